package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type OrganizationRepository struct {
	DB *gorm.DB
}

func (o *OrganizationRepository) FindByID(id uint) (*Organization, error) {
	var organization Organization

	result := o.DB.First(&organization, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		log.Printf("error finding organization %d: %s\n", id, result.Error)
		return nil, result.Error
	}
	return &organization, nil
}

// WithReachOutEmail returns the organizations which opted into the daily
// signup digest.
func (o *OrganizationRepository) WithReachOutEmail() ([]Organization, error) {
	var organizations []Organization

	result := o.DB.
		Where("reach_out_email IS NOT NULL AND reach_out_email != ?", "").
		Order("name ASC").
		Find(&organizations)
	if result.Error != nil {
		log.Printf("error listing organizations with a reach out email: %s\n", result.Error)
		return nil, result.Error
	}
	return organizations, nil
}
