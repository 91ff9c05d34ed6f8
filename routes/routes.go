package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pgstay-backend/controllers"
	"pgstay-backend/middleware"
	"pgstay-backend/models"
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

func registerListingRoutes(g *gin.RouterGroup, lc *controllers.ListingController) {
	g.GET("", lc.GetListings)
	g.GET("/:id", lc.GetListing)

	manage := g.Group("", middleware.AuthRequired(), middleware.RoleRequired(models.RoleOwner, models.RoleAdmin))
	{
		manage.POST("", lc.CreateListing)
		manage.PUT("/:id", lc.UpdateListing)
		manage.DELETE("/:id", lc.DeleteListing)
	}
}

// SetupRouter wires the controller instances into the HTTP surface.
func SetupRouter(
	pgController *controllers.ListingController,
	hostelController *controllers.ListingController,
	bookingController *controllers.BookingController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", "./uploads")

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
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
		}

		registerListingRoutes(api.Group("/pg"), pgController)
		registerListingRoutes(api.Group("/hostels"), hostelController)

		bookings := api.Group("/bookings", middleware.AuthRequired())
		{
			bookings.POST("", bookingController.CreateBooking)
			bookings.GET("/mybookings", bookingController.GetMyBookings)
			bookings.PUT("/:id/pay", bookingController.PayBooking)
		}
	}

	return r
}
