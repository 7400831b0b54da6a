package models

import "time"

type Answer struct {
	ID         uint   `gorm:"primaryKey"`
	UUID       string `gorm:"uniqueIndex;size:64;not null"`
	Content    string `gorm:"size:255;not null"`
	Date       time.Time
	UserID     uint `gorm:"index;not null"`
	User       User
	QuestionID uint `gorm:"index;not null"`
	Question   Question
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
