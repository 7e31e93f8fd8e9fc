package domain

import "time"

// Session is the authenticated identity carried by a request.
type Session struct {
	Username  string
	ExpiresAt time.Time
}
