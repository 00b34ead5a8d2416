package model

import "time"

type ProjectSignup struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	Name      string
	Email     string
	ProjectID uint `gorm:"index"`
}
