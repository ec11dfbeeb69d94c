package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-backend/models"
	"travel-backend/services"
	"travel-backend/utils"
)

type CustomerController struct {
	CustomerSvc *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{CustomerSvc: svc}
}

// CreateCustomer (POST /api/customers)
func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid customer payload: "+err.Error())
		return
	}

	if err := ctrl.CustomerSvc.Create(&customer); err != nil {
		log.Printf("DB ERROR during customer creation: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}
