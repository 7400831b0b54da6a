package models

import "time"

// UserAuthToken is one sign-in session. The row is authoritative for
// expiry and logout; the JWT's own claims are a convenience only.
type UserAuthToken struct {
	ID          uint   `gorm:"primaryKey"`
	UUID        string `gorm:"size:64;not null"`
	UserID      uint   `gorm:"index;not null"`
	User        User
	AccessToken string `gorm:"uniqueIndex;size:512;not null"`
	LoginAt     time.Time
	ExpiresAt   time.Time
	LogoutAt    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Active reports whether the session still authenticates at the given time.
func (t *UserAuthToken) Active(now time.Time) bool {
	return t.LogoutAt == nil && now.Before(t.ExpiresAt)
}
