package routes

import (
	"time"

	"chairbook/handlers"
	"chairbook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-account", hb.Users.CreateAccount)
	r.POST("/login", hb.Users.Login)
	r.GET("/get-user", middleware.JWTAuthMiddleware(), hb.Users.GetUser)
}

// RegisterCatalogRoutes registers service and product endpoints. Reads are public.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/get-services", hb.Catalog.GetServices)
	r.GET("/get-service/:id", hb.Catalog.GetService)
	r.GET("/get-products", hb.Catalog.GetProducts)
	r.GET("/get-product/:id", hb.Catalog.GetProduct)

	protected := r.Group("")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		protected.POST("/create-service", hb.Catalog.CreateService)
		protected.PUT("/edit-service/:id", hb.Catalog.EditService)
		protected.DELETE("/delete-service/:id", hb.Catalog.DeleteService)

		protected.POST("/create-product", hb.Catalog.CreateProduct)
		protected.PUT("/edit-product/:id", hb.Catalog.EditProduct)
		protected.DELETE("/delete-product/:id", hb.Catalog.DeleteProduct)
	}
}

// RegisterAppointmentRoutes registers booking endpoints, including the public availability query.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/get-available-slots", hb.Availability.GetAvailableSlots)

	protected := r.Group("")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		protected.POST("/create-appointment", hb.Appointments.CreateAppointment)
		protected.GET("/get-appointments", hb.Appointments.GetAppointments)
		protected.GET("/get-appointment/:id", hb.Appointments.GetAppointment)
		protected.GET("/get-appointment-by-user/:userId", hb.Appointments.GetAppointmentsByUser)
		protected.PUT("/edit-appointment/:id", hb.Appointments.EditAppointment)
		protected.DELETE("/delete-appointment/:id", hb.Appointments.DeleteAppointment)
	}
}

// RegisterEmailRoutes registers the contact form and newsletter endpoints.
func RegisterEmailRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/contact", hb.Email.Contact)
	r.POST("/subscribe", hb.Email.Subscribe)
}

// RegisterHealthRoutes registers liveness, health and metrics endpoints.
func RegisterHealthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.Health.Root)
	r.GET("/health", hb.Health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and global middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterEmailRoutes(r, hb)
}
