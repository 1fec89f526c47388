package handlers

import (
	"errors"
	"net/http"

	"chairbook/metrics"
	"chairbook/middleware"
	"chairbook/models"
	"chairbook/services/booking"
	"chairbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AppointmentHandler struct {
	Svc    booking.AppointmentService
	Logger *zap.Logger
}

func NewAppointmentHandler(svc booking.AppointmentService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc, Logger: logger}
}

// CreateAppointment handles POST /create-appointment.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	var req models.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	appt, err := h.Svc.CreateAppointment(c.Request.Context(), userID, req)
	if err != nil {
		metrics.RecordAppointment("create", outcome(err))
		h.fail(c, "CreateAppointment", err)
		return
	}
	metrics.RecordAppointment("create", "ok")

	c.JSON(http.StatusOK, gin.H{
		"error":       false,
		"appointment": appt,
		"message":     "Appointment created successfully",
	})
}

// GetAppointments handles GET /get-appointments.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	appts, err := h.Svc.ListAppointments(c.Request.Context())
	if err != nil {
		h.fail(c, "GetAppointments", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"error":        false,
		"appointments": appts,
		"message":      "All appointments retrieved successfully",
	})
}

// GetAppointment handles GET /get-appointment/:id.
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	appt, err := h.Svc.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "GetAppointment", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"error":       false,
		"appointment": appt,
		"message":     "Appointment retrieved successfully",
	})
}

// GetAppointmentsByUser handles GET /get-appointment-by-user/:userId.
func (h *AppointmentHandler) GetAppointmentsByUser(c *gin.Context) {
	appts, err := h.Svc.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.fail(c, "GetAppointmentsByUser", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"error":        false,
		"appointments": appts,
		"message":      "User appointments retrieved successfully",
	})
}

// EditAppointment handles PUT /edit-appointment/:id.
func (h *AppointmentHandler) EditAppointment(c *gin.Context) {
	var req models.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if req.Date == "" && req.Time == "" && req.Services == nil && req.Note == nil && req.Product == nil {
		utils.JSONError(c, http.StatusBadRequest, "No changes provided", "")
		return
	}

	appt, err := h.Svc.EditAppointment(c.Request.Context(), c.GetString(middleware.UserIDKey), c.Param("id"), req)
	if err != nil {
		metrics.RecordAppointment("edit", outcome(err))
		h.fail(c, "EditAppointment", err)
		return
	}
	metrics.RecordAppointment("edit", "ok")

	c.JSON(http.StatusOK, gin.H{
		"error":       false,
		"appointment": appt,
		"message":     "Appointment updated successfully",
	})
}

// DeleteAppointment handles DELETE /delete-appointment/:id.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	if err := h.Svc.DeleteAppointment(c.Request.Context(), c.GetString(middleware.UserIDKey), c.Param("id")); err != nil {
		metrics.RecordAppointment("delete", outcome(err))
		h.fail(c, "DeleteAppointment", err)
		return
	}
	metrics.RecordAppointment("delete", "ok")

	c.JSON(http.StatusOK, gin.H{
		"error":   false,
		"message": "Appointment deleted successfully",
	})
}

func (h *AppointmentHandler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, booking.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, "Invalid appointment", err.Error())
	case errors.Is(err, booking.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, booking.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "Forbidden", err.Error())
	case errors.Is(err, booking.ErrSlotUnavailable):
		utils.JSONError(c, http.StatusConflict, "Time slot unavailable", err.Error())
	case errors.Is(err, booking.ErrLockTimeout):
		utils.JSONError(c, http.StatusServiceUnavailable, "Booking is busy, please retry", "")
	default:
		h.Logger.Error(op+": failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func outcome(err error) string {
	switch {
	case errors.Is(err, booking.ErrSlotUnavailable):
		return "conflict"
	case errors.Is(err, booking.ErrValidation), errors.Is(err, booking.ErrNotFound), errors.Is(err, booking.ErrForbidden):
		return "rejected"
	default:
		return "error"
	}
}
