// Package format maps API responses into display documents (embeds).
// Everything here is pure: no network, no clock reads beyond the passed-in
// now, so each layout is testable in isolation.
package format

import "fmt"

// Element accent colors for character embeds.
var elementColors = map[string]int{
	"pyro":    0xfb4120,
	"electro": 0xbf73e7,
	"hydro":   0x15b1ff,
	"cryo":    0x70daf1,
	"dendro":  0xa0ca22,
	"anemo":   0x5cd4ac,
	"geo":     0xfab632,
}

// ResinColor shades the notes embed by resin count: green below 80,
// ramping through yellow to red as the cap approaches.
func ResinColor(current int) int {
	if current < 80 {
		return 0x28c828 + 0x010000*(0xa0*current/80)
	}
	return 0xc8c828 - 0x000100*(0xa0*(current-80)/80)
}

// NameFunc resolves a character/avatar id to a display name. The game-data
// tables live outside this service; the default falls back to the raw id.
type NameFunc func(avatarID int) string

// FallbackName renders an avatar id when no name table is wired.
func FallbackName(avatarID int) string {
	return fmt.Sprintf("#%d", avatarID)
}
