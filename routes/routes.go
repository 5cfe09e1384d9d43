package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"medibook/handlers"
)

// RegisterDoctorRoutes registers doctor profile and schedule endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.POST("", hb.RegisterDoctor)
		api.GET("/:id", hb.GetDoctor)
		api.GET("/:id/slots", hb.GetAvailableSlots)
		api.GET("/:id/appointments", hb.ListDoctorAppointments)
		api.PUT("/:id/schedule", hb.UpdateWeeklySchedule)
		api.PUT("/:id/block-date", hb.BlockDate)
		api.POST("/:id/blocked-dates", hb.AddBlockedDate)
		api.DELETE("/:id/blocked-dates/:date", hb.UnblockDate)
		api.PUT("/:id/overrides", hb.UpsertOverride)
		api.GET("/:id/overrides", hb.ListOverrides)
		api.DELETE("/:id/overrides/:date", hb.DeleteOverride)
	}
}

// RegisterAppointmentRoutes registers booking and lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.POST("", hb.BookAppointment)
		api.GET("/:id", hb.GetAppointment)
		api.PUT("/:id/transition", hb.TransitionAppointment)
	}

	r.GET("/api/patients/:id/appointments", hb.ListPatientAppointments)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Medibook"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "Idempotency-Key"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	RegisterHealthRoute(r)
	RegisterDoctorRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
}
