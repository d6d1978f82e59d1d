// File: routes/routes.go
package routes

import (
	"consulta/handlers"
	"consulta/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	Calendar *handlers.CalendarHandler
	Sessions *handlers.SessionHandler
	Patients *handlers.PatientHandler
	Settings *handlers.SettingsHandler
	Payments *handlers.PaymentHandler
}

// RegisterRoutes registers all endpoints on the router.
func RegisterRoutes(r *gin.Engine, h *HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware())

	calendar := api.Group("/calendar")
	{
		calendar.GET("/events", h.Calendar.GetEvents)
		calendar.POST("/slots", h.Calendar.SelectSlot)
		calendar.POST("/moves", h.Calendar.MoveSession)
	}

	sessions := api.Group("/sessions")
	{
		sessions.GET("", h.Sessions.List)
		sessions.POST("", h.Sessions.Create)
		sessions.GET("/:id", h.Sessions.Get)
		sessions.PUT("/:id/schedule", h.Sessions.Reschedule)
		sessions.PUT("/:id/cancel", h.Sessions.Cancel)
		sessions.PUT("/:id/complete", h.Sessions.Complete)
		sessions.GET("/:id/notes", h.Sessions.ListNotes)
		sessions.POST("/:id/notes", h.Sessions.AddNote)
		sessions.DELETE("/:id/notes/:noteId", h.Sessions.DeleteNote)
		sessions.GET("/:id/payments", h.Payments.ListBySession)
	}

	patients := api.Group("/patients")
	{
		patients.GET("", h.Patients.List)
		patients.POST("", h.Patients.Create)
		patients.GET("/:id", h.Patients.Get)
		patients.PUT("/:id", h.Patients.Update)
		patients.PUT("/:id/archive", h.Patients.Archive)
		patients.DELETE("/:id", h.Patients.Delete)
		patients.GET("/:id/payments", h.Payments.ListByPatient)
	}

	settings := api.Group("/settings")
	{
		settings.GET("/schedule", h.Settings.GetSchedule)
		settings.PUT("/working-hours", h.Settings.SaveWorkingHours)
		settings.GET("/day-offs", h.Settings.ListDayOffs)
		settings.POST("/day-offs", h.Settings.CreateDayOff)
		settings.PUT("/day-offs/:id", h.Settings.UpdateDayOff)
		settings.DELETE("/day-offs/:id", h.Settings.DeleteDayOff)
	}

	payments := api.Group("/payments")
	{
		payments.GET("/pending", h.Payments.ListPending)
		payments.POST("", h.Payments.RecordCharge)
		payments.PUT("/:id/paid", h.Payments.MarkPaid)
		payments.DELETE("/:id", h.Payments.Delete)
	}
}
