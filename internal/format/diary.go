package format

import (
	"fmt"
	"strings"

	"github.com/paimonbot/paimonbot/internal/hoyo"
	"github.com/paimonbot/paimonbot/internal/model"
)

const diaryColor = 0xfd96f4

// Diary renders one month of the traveler's diary.
func Diary(d *hoyo.Diary, month int) *model.Embed {
	m := d.MonthData

	embed := &model.Embed{
		Title: fmt.Sprintf("%s's Traveler's Notes: Month %d", d.Nickname, month),
		Description: fmt.Sprintf(
			"Primogem income %s %d%% from last month, Mora income %s %d%%",
			upOrDown(m.PrimogemsRate), abs(m.PrimogemsRate),
			upOrDown(m.MoraRate), abs(m.MoraRate),
		),
		Color: diaryColor,
	}

	embed.AddField(
		"Obtained this month",
		fmt.Sprintf(
			"Primogems: %d (%d wishes)　Last month: %d (%d)\nMora: %s　Last month: %s",
			m.CurrentPrimogems, wishes(m.CurrentPrimogems),
			m.LastPrimogems, wishes(m.LastPrimogems),
			comma(m.CurrentMora), comma(m.LastMora),
		),
		false,
	)

	// Income composition split across two columns.
	cats := m.GroupBy
	half := (len(cats) + 1) / 2
	for i, part := range [][]hoyo.DiaryCategory{cats[:half], cats[half:]} {
		var b strings.Builder
		for _, cat := range part {
			fmt.Fprintf(&b, "%s: %d%%\n", cat.Action, cat.Percent)
		}
		if b.Len() == 0 {
			continue
		}
		embed.AddField(fmt.Sprintf("Primogem Income Composition (%d)", i+1), b.String(), true)
	}

	return embed
}

// wishes converts a primogem count to the wish count it pays for.
func wishes(primogems int) int {
	return (primogems + 80) / 160
}

func upOrDown(rate int) string {
	if rate > 0 {
		return "is up"
	}
	return "is down"
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
