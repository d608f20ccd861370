package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// clockAt renders the wall-clock moment a countdown ends, with a day label:
// "Today 18:30", "Tomorrow 07:05" or a weekday name for anything later.
func clockAt(now time.Time, in time.Duration) string {
	at := now.Add(in)
	ny, nm, nd := now.Date()
	ay, am, ad := at.Date()

	var day string
	switch {
	case ny == ay && nm == am && nd == ad:
		day = "Today"
	case at.Sub(time.Date(ny, nm, nd, 0, 0, 0, 0, now.Location())) < 48*time.Hour:
		day = "Tomorrow"
	default:
		day = at.Weekday().String()
	}
	return fmt.Sprintf("%s %02d:%02d", day, at.Hour(), at.Minute())
}

// comma formats an integer with thousands separators.
func comma(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
