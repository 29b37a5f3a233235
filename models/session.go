package models

import (
	"time"
)

// Session is a server-held login session. The opaque token travels in
// a cookie; everything else stays in the database.
type Session struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	AdminID   uint      `gorm:"not null;index" json:"admin_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
