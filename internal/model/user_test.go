package model

import (
	"testing"
	"time"
)

func TestUserRecordExpiredAt(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	retention := 120 * 24 * time.Hour

	tests := []struct {
		name     string
		lastUsed time.Time
		want     bool
	}{
		{"just used", now, false},
		{"exactly at boundary", now.Add(-retention), false},
		{"one second past boundary", now.Add(-retention - time.Second), true},
		{"long expired", now.Add(-365 * 24 * time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &UserRecord{Cookie: "c", LastUsedAt: tt.lastUsed}
			if got := r.ExpiredAt(now, retention); got != tt.want {
				t.Errorf("ExpiredAt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserRecordHasUID(t *testing.T) {
	r := &UserRecord{Cookie: "c"}
	if r.HasUID() {
		t.Error("record without UID should report HasUID() == false")
	}
	r.UID = "901211014"
	if !r.HasUID() {
		t.Error("record with UID should report HasUID() == true")
	}
}
