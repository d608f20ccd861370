package format

import (
	"fmt"
	"strings"

	"github.com/paimonbot/paimonbot/internal/enka"
	"github.com/paimonbot/paimonbot/internal/hoyo"
	"github.com/paimonbot/paimonbot/internal/model"
)

const showcaseColor = 0xfd96f4

// Showcase renders a public showcase profile. Showcased characters are
// resolved through names; unknown IDs keep the numeric fallback.
func Showcase(sc *enka.Showcase, names NameFunc) *model.Embed {
	info := sc.PlayerInfo
	embed := &model.Embed{
		Title: fmt.Sprintf("%s's Profile", info.Nickname),
		Description: fmt.Sprintf(
			"UID: %s (%s)\n%s",
			sc.UID, hoyo.ServerNameFromUID(sc.UID), info.Signature,
		),
		Color: showcaseColor,
	}

	embed.AddField(
		"Adventure",
		fmt.Sprintf(
			"AR %d　WL %d\nAchievements: %d\nSpiral Abyss: %d-%d",
			info.Level, info.WorldLevel,
			info.FinishAchievementNum,
			info.TowerFloorIndex, info.TowerLevelIndex,
		),
		false,
	)

	if len(info.ShowAvatarInfoList) > 0 {
		var b strings.Builder
		for _, av := range info.ShowAvatarInfoList {
			fmt.Fprintf(&b, "Lv.%d %s\n", av.Level, names(av.AvatarID))
		}
		embed.AddField("Showcase", b.String(), false)
	}

	if !sc.HasDetails {
		embed.Footer = "Character details are hidden in game settings."
	}
	return embed
}
