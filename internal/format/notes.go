package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/paimonbot/paimonbot/internal/hoyo"
	"github.com/paimonbot/paimonbot/internal/model"
)

const divider = "--------------------\n"

// Notes renders the real-time notes. In short form (scheduled alerts) the
// commission, weekly and expedition sections are omitted.
func Notes(n *hoyo.Notes, uid string, short bool, now time.Time) *model.Embed {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", hoyo.ServerNameFromUID(uid), hoyo.MaskUID(uid))
	b.WriteString(divider)

	// Resin
	fmt.Fprintf(&b, "Current Resin: %d/%d\n", n.CurrentResin, n.MaxResin)
	if n.CurrentResin >= n.MaxResin {
		b.WriteString("Full Recovery Time: FULL!\n")
	} else {
		fmt.Fprintf(&b, "Full Recovery Time: %s\n", clockAt(now, n.ResinRecoveryTime.Duration()))
	}

	if !short {
		fmt.Fprintf(&b, "Daily Commissions: %d left\n", n.TotalTaskNum-n.FinishedTaskNum)
		fmt.Fprintf(&b, "Weekly Boss Discounts: %d left\n", n.RemainResinDiscountNum)
	}
	b.WriteString(divider)

	// Realm currency
	fmt.Fprintf(&b, "Realm Currency: %d/%d\n", n.CurrentHomeCoin, n.MaxHomeCoin)
	if n.MaxHomeCoin > 0 {
		if n.CurrentHomeCoin >= n.MaxHomeCoin {
			b.WriteString("Full Recovery Time: FULL!\n")
		} else {
			fmt.Fprintf(&b, "Full Recovery Time: %s\n", clockAt(now, n.HomeCoinRecoveryTime.Duration()))
		}
	}

	// Parametric transformer
	if n.Transformer != nil && n.Transformer.Obtained {
		fmt.Fprintf(&b, "Parametric Transformer: %s\n", transformerState(n.Transformer))
	}

	// Expeditions
	if !short {
		b.WriteString(divider)
		finished := 0
		var lines strings.Builder
		for i, e := range n.Expeditions {
			if e.Finished() {
				finished++
				fmt.Fprintf(&lines, "· Expedition %d: Completed\n", i+1)
			} else {
				fmt.Fprintf(&lines, "· Expedition %d: done %s\n", i+1, clockAt(now, e.RemainedTime.Duration()))
			}
		}
		fmt.Fprintf(&b, "Expeditions Completed: %d/%d\n", finished, len(n.Expeditions))
		b.WriteString(lines.String())
	}

	return &model.Embed{
		Description: b.String(),
		Color:       ResinColor(n.CurrentResin),
	}
}

func transformerState(t *hoyo.Transformer) string {
	r := t.RecoveryTime
	switch {
	case r.Reached:
		return "ready"
	case r.Day > 0:
		return fmt.Sprintf("%d days left", r.Day)
	case r.Hour > 0:
		return fmt.Sprintf("%d hours left", r.Hour)
	case r.Minute > 0:
		return fmt.Sprintf("%d minutes left", r.Minute)
	case r.Second > 0:
		return fmt.Sprintf("%d seconds left", r.Second)
	default:
		return "ready"
	}
}
