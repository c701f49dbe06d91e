package domain

import (
	"fmt"
	"time"
)

// User represents a bot user
type User struct {
	UserID     int64
	Username   string
	Authorized bool
	CreatedAt  time.Time
}

// DisplayName returns the username or a fallback built from the ID
func (u User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return fmt.Sprintf("player %d", u.UserID)
}
