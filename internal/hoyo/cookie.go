// Package hoyo provides a typed client for the HoYoLAB account and
// game-record APIs. All application-level failures are reduced to the
// package's error taxonomy at this boundary.
package hoyo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedCookie indicates the pasted cookie text does not contain a
// usable credential pair. Returned before any network call is made.
var ErrMalformedCookie = errors.New("malformed cookie")

// Cookie keys the API accepts for authentication, in output order.
var cookieKeys = []string{
	"ltoken", "ltuid", "ltoken_v2", "ltmid_v2", "ltuid_v2",
	"cookie_token", "account_id", "cookie_token_v2", "account_mid_v2", "account_id_v2",
}

// NormalizeCookie extracts the authentication fields from a raw cookie blob
// as pasted from a browser. Users tend to paste the whole document.cookie
// string, so everything except the known keys is discarded.
//
// At least one complete pair (ltuid+ltoken, ltuid_v2+ltoken_v2 or
// account_id+cookie_token) must be present.
func NormalizeCookie(raw string) (string, error) {
	raw = strings.NewReplacer("\n", ";", "\r", ";", "\t", " ").Replace(raw)

	found := make(map[string]string)
	for _, part := range strings.Split(raw, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		v = strings.Trim(strings.TrimSpace(v), `"`)
		if v == "" {
			continue
		}
		for _, want := range cookieKeys {
			if k == want {
				found[k] = v
				break
			}
		}
	}

	complete := (found["ltuid"] != "" && found["ltoken"] != "") ||
		(found["ltuid_v2"] != "" && found["ltoken_v2"] != "") ||
		(found["account_id"] != "" && found["cookie_token"] != "")
	if !complete {
		return "", ErrMalformedCookie
	}

	var b strings.Builder
	for _, k := range cookieKeys {
		if v, ok := found[k]; ok {
			if b.Len() > 0 {
				b.WriteString("; ")
			}
			fmt.Fprintf(&b, "%s=%s", k, v)
		}
	}
	return b.String(), nil
}

// accountID returns the HoYoLAB account id embedded in a normalized cookie,
// or "" when none is present. The record-card endpoint is keyed by it.
func accountID(cookie string) string {
	for _, part := range strings.Split(cookie, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "ltuid", "ltuid_v2", "account_id":
			return v
		}
	}
	return ""
}
