package models

import "time"

const (
	RoleAdmin    = "admin"
	RoleNonadmin = "nonadmin"
)

type User struct {
	ID            uint   `gorm:"primaryKey"`
	UUID          string `gorm:"uniqueIndex;size:64;not null"`
	Username      string `gorm:"uniqueIndex;size:191;not null"`
	Email         string `gorm:"uniqueIndex;size:191;not null"`
	FirstName     string `gorm:"size:191"`
	LastName      string `gorm:"size:191"`
	PasswordHash  []byte `gorm:"size:255;not null"`
	Salt          []byte `gorm:"size:64;not null"`
	Country       string `gorm:"size:64"`
	AboutMe       string `gorm:"size:512"`
	DOB           string `gorm:"size:32"`
	ContactNumber string `gorm:"size:32"`
	Role          string `gorm:"size:32;not null;default:nonadmin"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
