package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"travel-backend/controllers"
	"travel-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	pc *controllers.PackageController,
	bc *controllers.BookingController,
	cc *controllers.CustomerController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		packages := api.Group("/packages")
		{
			packages.GET("", pc.SearchPackages)

			// must come before /:id so "slug" doesn't hit the numeric handler
			packages.GET("/slug/:slug", pc.GetPackageBySlug)

			packages.GET("/:id", pc.GetPackageByID)
			packages.GET("/:id/availability", pc.GetAvailability)
			packages.POST("/:id/validate", pc.ValidateSelection)
			packages.POST("/:id/price", pc.CalculatePrice)
		}

		customersRoutes := api.Group("/customers")
		{
			customersRoutes.POST("", cc.CreateCustomer)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBookingDetails)
			bookings.DELETE("/:id", bc.CancelBooking)
		}
	}

	return r
}
