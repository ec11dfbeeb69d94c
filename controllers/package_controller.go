package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travel-backend/services"
	"travel-backend/utils"
)

type PackageController struct {
	Facade *services.PackageFacade
}

func NewPackageController(facade *services.PackageFacade) *PackageController {
	return &PackageController{Facade: facade}
}

// statusForResolverErr maps the resolver's error taxonomy onto HTTP: missing
// rows are 404-class, rule violations 400-class, everything else 500.
func statusForResolverErr(err error) int {
	switch {
	case errors.Is(err, services.ErrPackageNotFound),
		errors.Is(err, services.ErrDepartureNotFound),
		errors.Is(err, services.ErrHotelOptionNotFound),
		errors.Is(err, services.ErrHotelPricingNotFound),
		errors.Is(err, services.ErrRoomTypePricingNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrSelectionInvalid),
		errors.Is(err, services.ErrAdultPriceNotConfigured),
		errors.Is(err, services.ErrInboundPricingNotDefault):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// SearchPackages (GET /api/packages)
func (ctrl *PackageController) SearchPackages(c *gin.Context) {
	var params services.PackageSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid search parameters: "+err.Error())
		return
	}

	result, err := ctrl.Facade.SearchPackages(params)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

// GetPackageByID (GET /api/packages/:id)
func (ctrl *PackageController) GetPackageByID(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	pkg, err := ctrl.Facade.GetPackageByID(id)
	if err != nil {
		utils.JSONError(c, statusForResolverErr(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, pkg)
}

// GetPackageBySlug (GET /api/packages/slug/:slug)
func (ctrl *PackageController) GetPackageBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid slug")
		return
	}

	pkg, err := ctrl.Facade.GetPackageBySlug(slug)
	if err != nil {
		utils.JSONError(c, statusForResolverErr(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, pkg)
}

// GetAvailability (GET /api/packages/:id/availability?departureOptionId=N)
func (ctrl *PackageController) GetAvailability(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var departureID *uint
	if raw := c.Query("departureOptionId"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || v == 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid departureOptionId")
			return
		}
		dep := uint(v)
		departureID = &dep
	}

	options, err := ctrl.Facade.ResolveAvailability(id, departureID)
	if err != nil {
		utils.JSONError(c, statusForResolverErr(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, options)
}

// ValidateSelection (POST /api/packages/:id/validate)
func (ctrl *PackageController) ValidateSelection(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var sel services.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid selection payload: "+err.Error())
		return
	}

	result, err := ctrl.Facade.ValidateSelection(id, sel)
	if err != nil {
		utils.JSONError(c, statusForResolverErr(err), err.Error())
		return
	}
	// validation failures are data, not an HTTP error
	utils.JSONSuccess(c, http.StatusOK, result)
}

// CalculatePrice (POST /api/packages/:id/price)
func (ctrl *PackageController) CalculatePrice(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var sel services.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid selection payload: "+err.Error())
		return
	}

	breakdown, err := ctrl.Facade.CalculatePrice(id, sel)
	if err != nil {
		utils.JSONError(c, statusForResolverErr(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, breakdown)
}
