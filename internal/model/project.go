package model

import "time"

// Project is a senior project looking for volunteers. Unlike events,
// projects have no schedule of their own; only their signups are digested.
type Project struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Uuid      string `gorm:"uniqueIndex"`
	Title     string
	UserID    uint
	Signups   []ProjectSignup `gorm:"constraint:OnDelete:CASCADE"`
}
