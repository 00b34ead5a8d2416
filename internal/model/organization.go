package model

import "time"

// Organization owns events. ContactEmail receives the pre-start roll-call
// notice, ReachOutEmail the daily signup digest; either may be left empty to
// opt out of the corresponding notification.
type Organization struct {
	ID            uint `gorm:"primarykey"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Uuid          string `gorm:"uniqueIndex"`
	Name          string
	ContactEmail  string
	ReachOutEmail string
	UserID        uint
	Events        []Event `gorm:"constraint:OnDelete:CASCADE"`
}
