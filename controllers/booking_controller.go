package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travel-backend/models"
	"travel-backend/services"
	"travel-backend/utils"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type TravelerPayload struct {
	FullName        string `json:"fullName" binding:"required"`
	Category        string `json:"category"`
	DateOfBirth     string `json:"dateOfBirth,omitempty"`
	Gender          string `json:"gender,omitempty"`
	Nationality     string `json:"nationality,omitempty"`
	PassportNumber  string `json:"passportNumber,omitempty"`
	PassportExpiry  string `json:"passportExpiry,omitempty"`
	PassportCountry string `json:"passportCountry,omitempty"`
}

type CreateBookingRequest struct {
	CustomerID uint               `json:"customerId" binding:"required"`
	PackageID  uint               `json:"packageId" binding:"required"`
	Selection  services.Selection `json:"selection" binding:"required"`
	Travelers  []TravelerPayload  `json:"travelers"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

func parseDatePtr(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}

func (p TravelerPayload) toModel() models.Traveler {
	return models.Traveler{
		FullName:        p.FullName,
		Category:        p.Category,
		DateOfBirth:     parseDatePtr(p.DateOfBirth),
		Gender:          p.Gender,
		Nationality:     p.Nationality,
		PassportNumber:  p.PassportNumber,
		PassportExpiry:  parseDatePtr(p.PassportExpiry),
		PassportCountry: p.PassportCountry,
	}
}

// CreateBooking (POST /api/bookings)
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload: "+err.Error())
		return
	}

	travelers := make([]models.Traveler, 0, len(req.Travelers))
	for _, p := range req.Travelers {
		travelers = append(travelers, p.toModel())
	}

	booking, validation, err := ctrl.BookingSvc.Create(services.CreateBookingInput{
		CustomerID: req.CustomerID,
		PackageID:  req.PackageID,
		Selection:  req.Selection,
		Travelers:  travelers,
	})
	if err != nil {
		if errors.Is(err, services.ErrSelectionInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success":    false,
				"error":      err.Error(),
				"validation": validation,
			})
			return
		}
		status := statusForResolverErr(err)
		if status == http.StatusInternalServerError {
			log.Printf("DB ERROR during booking creation: %v", err)
		}
		utils.JSONError(c, status, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"data":       booking,
		"validation": validation,
	})
}

// GetBookings (GET /api/bookings)
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	list, err := ctrl.BookingSvc.GetAllWithRelations()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GetBookingDetails (GET /api/bookings/:id)
func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CancelBooking (DELETE /api/bookings/:id)
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.BookingSvc.Cancel(id); err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Booking cancelled"})
}
