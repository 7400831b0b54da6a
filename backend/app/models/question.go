package models

import "time"

type Question struct {
	ID        uint   `gorm:"primaryKey"`
	UUID      string `gorm:"uniqueIndex;size:64;not null"`
	Content   string `gorm:"size:500;not null"`
	Date      time.Time
	UserID    uint `gorm:"index;not null"`
	User      User
	CreatedAt time.Time
	UpdatedAt time.Time
}
