package model

import "time"

// UserRecord is the per-user credential record held by the store.
// A record exists only after a cookie has been validated; the UID is
// optional until the user picks (or the store auto-assigns) one.
type UserRecord struct {
	Cookie     string    `json:"cookie"`
	UID        string    `json:"uid,omitempty"`
	LastUsedAt time.Time `json:"last_used_at"`
}

// HasUID reports whether a game UID has been assigned.
func (r *UserRecord) HasUID() bool {
	return r.UID != ""
}

// ExpiredAt reports whether the record has been unused for longer
// than the retention window as of now.
func (r *UserRecord) ExpiredAt(now time.Time, retention time.Duration) bool {
	return now.Sub(r.LastUsedAt) > retention
}
