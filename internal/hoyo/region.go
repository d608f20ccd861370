package hoyo

// RegionFromUID maps a game UID to the server identifier the record API
// expects. UIDs encode their server in the leading digit.
func RegionFromUID(uid string) string {
	if uid == "" {
		return ""
	}
	switch uid[0] {
	case '1', '2', '3', '4':
		return "cn_gf01"
	case '5':
		return "cn_qd01"
	case '6':
		return "os_usa"
	case '7':
		return "os_euro"
	case '8':
		return "os_asia"
	case '9':
		return "os_cht"
	default:
		return ""
	}
}

// ServerNameFromUID returns a display name for the server a UID lives on.
func ServerNameFromUID(uid string) string {
	if uid == "" {
		return ""
	}
	switch uid[0] {
	case '1', '2', '3', '4', '5':
		return "China"
	case '6':
		return "America"
	case '7':
		return "Europe"
	case '8':
		return "Asia"
	case '9':
		return "TW/HK/MO"
	default:
		return ""
	}
}

// MaskUID hides the middle digits of a UID for display, keeping the first
// and last three.
func MaskUID(uid string) string {
	if len(uid) <= 6 {
		return uid
	}
	return uid[:3] + "***" + uid[len(uid)-3:]
}
