package model

import (
	"time"
)

// Flash levels mirror the success_msg / error_msg split of the rendered
// notifications.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot notification queued on a session, rendered on the next
// page load and then discarded.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Session is the server-side session row. UserID is nil for anonymous
// sessions, which exist only to carry flash messages for guests. The client
// holds a signed cookie referencing the row by ID; the row is authoritative.
type Session struct {
	ID        string    `db:"id"`
	UserID    *string   `db:"user_id"`
	Flash     string    `db:"flash"` // JSON-encoded []Flash
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

func (s *Session) IsAuthenticated() bool {
	return s.UserID != nil && *s.UserID != ""
}
