package model

import "time"

// User is a platform account. The engine only reads users to resolve the
// owner email for project digests; account management lives elsewhere.
type User struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Uuid      string `gorm:"uniqueIndex"`
	Name      string
	Email     string `gorm:"uniqueIndex"`
}
