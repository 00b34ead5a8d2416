package model

import "time"

// Signup is a volunteer's registration for a single event.
type Signup struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	Name        string
	Email       string
	Phone       string
	Institution string
	EventID     uint `gorm:"index"`
}
