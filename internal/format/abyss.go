package format

import (
	"fmt"
	"strings"

	"github.com/paimonbot/paimonbot/internal/hoyo"
	"github.com/paimonbot/paimonbot/internal/model"
)

const abyssColor = 0x6959c1

// AbyssOverview renders the season summary: window, progress, battle count,
// stars and the per-category best characters.
func AbyssOverview(a *hoyo.SpiralAbyss, names NameFunc) *model.Embed {
	embed := &model.Embed{
		Description: fmt.Sprintf(
			"Phase %d: %s ~ %s",
			a.ScheduleID,
			a.StartTime.Time().Format("02.01.2006"),
			a.EndTime.Time().Format("02.01.2006"),
		),
		Color: abyssColor,
	}

	crown := "Keep pushing, the stars are waiting!"
	if a.TotalStar == 36 {
		crown = "👑 Congratulations on 36 stars!"
	}

	value := fmt.Sprintf(
		"%s\n[Most Defeats] %s\n[Strongest Strike] %s\n[Most Damage Taken] %s\n[Most Ultimates Used] %s\n[Most Skills Used] %s",
		crown,
		rankLine(a.DefeatRank, names),
		rankLine(a.DamageRank, names),
		rankLine(a.TakeDamageRank, names),
		rankLine(a.EnergySkillRank, names),
		rankLine(a.NormalSkillRank, names),
	)

	embed.AddField(
		fmt.Sprintf("Deepest Descent: %s　Battles: %d　★: %d", a.MaxFloor, a.TotalBattleTimes, a.TotalStar),
		value,
		false,
	)
	return embed
}

// AbyssFloors appends per-chamber fields. Only the last floor is rendered
// unless full is true.
func AbyssFloors(embed *model.Embed, a *hoyo.SpiralAbyss, full bool, names NameFunc) *model.Embed {
	for i, floor := range a.Floors {
		if !full && i != len(a.Floors)-1 {
			continue
		}
		for _, level := range floor.Levels {
			// First and second half teams of the chamber.
			teams := [2]string{}
			for j, battle := range level.Battles {
				if j > 1 {
					break
				}
				parts := make([]string, 0, len(battle.Avatars))
				for _, av := range battle.Avatars {
					parts = append(parts, names(av.ID))
				}
				teams[j] = strings.Join(parts, ".")
			}
			embed.AddField(
				fmt.Sprintf("%d-%d　★%d", floor.Index, level.Index, level.Star),
				fmt.Sprintf("[%s]／\n[%s]", teams[0], teams[1]),
				true,
			)
		}
	}
	return embed
}

func rankLine(rank []hoyo.RankAvatar, names NameFunc) string {
	if len(rank) == 0 {
		return " "
	}
	return fmt.Sprintf("%s: %d", names(rank[0].AvatarID), rank[0].Value)
}
