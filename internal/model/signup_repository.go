package model

import (
	"log"
	"time"

	"gorm.io/gorm"
)

type SignupRepository struct {
	DB *gorm.DB
}

func (s *SignupRepository) ByEvent(eventID uint) ([]Signup, error) {
	var signups []Signup

	result := s.DB.Where("event_id = ?", eventID).Order("created_at ASC").Find(&signups)
	if result.Error != nil {
		log.Printf("error listing signups of event %d: %s\n", eventID, result.Error)
		return nil, result.Error
	}
	return signups, nil
}

func (s *SignupRepository) CountByEvent(eventID uint) (int64, error) {
	var total int64

	result := s.DB.Model(&Signup{}).Where("event_id = ?", eventID).Count(&total)
	if result.Error != nil {
		log.Printf("error counting signups of event %d: %s\n", eventID, result.Error)
		return 0, result.Error
	}
	return total, nil
}

// ForEventsBetween returns signups for any of the given events created
// inside [from, until). The upper bound is exclusive so that consecutive
// day ranges never overlap.
func (s *SignupRepository) ForEventsBetween(eventIDs []uint, from, until time.Time) ([]Signup, error) {
	var signups []Signup

	result := s.DB.
		Where("event_id IN ?", eventIDs).
		Where("created_at >= ? AND created_at < ?", from, until).
		Order("created_at ASC").
		Find(&signups)
	if result.Error != nil {
		log.Printf("error listing signups between %s and %s: %s\n", from, until, result.Error)
		return nil, result.Error
	}
	return signups, nil
}
