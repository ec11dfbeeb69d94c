package services

import (
	"gorm.io/gorm"

	"travel-backend/models"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

// Create takes a pointer so gorm writes the generated ID back.
func (s *CustomerService) Create(customer *models.Customer) error {
	return s.DB.Create(customer).Error
}

func (s *CustomerService) GetByID(id uint) (models.Customer, error) {
	var customer models.Customer
	err := s.DB.First(&customer, id).Error
	return customer, err
}
