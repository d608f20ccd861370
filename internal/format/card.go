package format

import (
	"fmt"
	"strings"

	"github.com/paimonbot/paimonbot/internal/hoyo"
	"github.com/paimonbot/paimonbot/internal/model"
)

const cardColor = 0xfd96f4

// RecordCard renders the public record card together with the partial user
// statistics the card view links to.
func RecordCard(card *hoyo.RecordCard, stats *hoyo.UserStats) *model.Embed {
	embed := &model.Embed{
		Title: fmt.Sprintf("%s's Record Card", card.Nickname),
		Description: fmt.Sprintf(
			"UID: %s　AR %d　%s",
			card.GameRoleID, card.Level, card.RegionName,
		),
		Color: cardColor,
	}

	for _, entry := range card.Data {
		embed.AddField(entry.Name, entry.Value, true)
	}

	s := stats.Stats
	embed.AddField(
		"Statistics",
		fmt.Sprintf(
			"Achievements: %d\nCharacters: %d\nSpiral Abyss: %s",
			s.Achievements, s.Characters, s.SpiralAbyss,
		),
		false,
	)
	embed.AddField(
		"Oculi",
		fmt.Sprintf("Anemoculi: %d　Geoculi: %d　Electroculi: %d", s.Anemoculi, s.Geoculi, s.Electroculi),
		true,
	)
	embed.AddField(
		"Chests",
		chestLine(s),
		true,
	)
	return embed
}

func chestLine(s hoyo.Stats) string {
	parts := []string{
		fmt.Sprintf("Luxurious: %d", s.LuxuriousChests),
		fmt.Sprintf("Precious: %d", s.PreciousChests),
		fmt.Sprintf("Exquisite: %d", s.ExquisiteChests),
		fmt.Sprintf("Common: %d", s.CommonChests),
	}
	return strings.Join(parts, "　")
}
