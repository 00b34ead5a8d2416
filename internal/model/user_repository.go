package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (u *UserRepository) FindByID(id uint) (*User, error) {
	var user User

	result := u.DB.First(&user, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		log.Printf("error finding user %d: %s\n", id, result.Error)
		return nil, result.Error
	}
	return &user, nil
}
