package model

import (
	"log"
	"time"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	DB *gorm.DB
}

func (p *ProjectRepository) List() ([]Project, error) {
	var projects []Project

	result := p.DB.Order("title ASC").Find(&projects)
	if result.Error != nil {
		log.Printf("error listing projects: %s\n", result.Error)
		return nil, result.Error
	}
	return projects, nil
}

// SignupsBetween returns the project's signups created inside [from, until).
func (p *ProjectRepository) SignupsBetween(projectID uint, from, until time.Time) ([]ProjectSignup, error) {
	var signups []ProjectSignup

	result := p.DB.
		Where("project_id = ?", projectID).
		Where("created_at >= ? AND created_at < ?", from, until).
		Order("created_at ASC").
		Find(&signups)
	if result.Error != nil {
		log.Printf("error listing signups of project %d: %s\n", projectID, result.Error)
		return nil, result.Error
	}
	return signups, nil
}
