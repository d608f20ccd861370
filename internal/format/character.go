package format

import (
	"fmt"
	"strings"

	"github.com/paimonbot/paimonbot/internal/hoyo"
	"github.com/paimonbot/paimonbot/internal/model"
)

// Character renders one owned character with constellation, weapon and
// artifact details.
func Character(c *hoyo.Character) *model.Embed {
	embed := &model.Embed{
		Color:     elementColors[strings.ToLower(c.Element)],
		Thumbnail: c.Icon,
	}

	embed.AddField(
		fmt.Sprintf("%d★ %s", c.Rarity, c.Name),
		fmt.Sprintf("Constellation: %d\nLevel: %d\nFriendship: Lv. %d", c.Constellation, c.Level, c.Fetter),
		true,
	)

	embed.AddField(
		fmt.Sprintf("%d★ %s", c.Weapon.Rarity, c.Weapon.Name),
		fmt.Sprintf("Refinement: %d\nLevel: %d", c.Weapon.AffixLevel, c.Weapon.Level),
		true,
	)

	if c.Constellation > 0 {
		var b strings.Builder
		for _, con := range c.Constellations {
			if !con.IsActived {
				continue
			}
			fmt.Fprintf(&b, "C%d: %s\n", con.Pos, con.Name)
		}
		if b.Len() > 0 {
			embed.AddField("Constellations", b.String(), false)
		}
	}

	if len(c.Reliquaries) > 0 {
		var b strings.Builder
		for _, art := range c.Reliquaries {
			fmt.Fprintf(&b, "%s: %s\n", art.PosName, art.Set.Name)
		}
		embed.AddField("Artifacts", b.String(), false)
	}

	return embed
}

// CharacterList renders a compact summary of every owned character.
func CharacterList(chars []hoyo.Character) *model.Embed {
	embed := &model.Embed{Title: fmt.Sprintf("Characters (%d)", len(chars))}

	var b strings.Builder
	for _, c := range chars {
		fmt.Fprintf(&b, "%d★ Lv.%d C%d %s\n", c.Rarity, c.Level, c.Constellation, c.Name)
	}
	embed.Description = b.String()
	return embed
}
