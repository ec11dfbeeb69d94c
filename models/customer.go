package models

import (
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model

	FullName string `json:"fullName"`
	Email    string `gorm:"size:191" json:"email"`
	Phone    string `gorm:"size:32" json:"phone,omitempty"`
	Country  string `gorm:"size:64" json:"country,omitempty"`
}
