package handlers

import (
	"errors"
	"net/http"
	"strings"

	"chairbook/metrics"
	"chairbook/models"
	"chairbook/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	Engine *availability.Engine
	Logger *zap.Logger
}

func NewAvailabilityHandler(engine *availability.Engine, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine, Logger: logger}
}

// GetAvailableSlots handles GET /get-available-slots?date=YYYY-MM-DD&duration=N[&services=a,b].
func (h *AvailabilityHandler) GetAvailableSlots(c *gin.Context) {
	duration, err := availability.ParseDurationParam(c.Query("duration"))
	if err != nil {
		h.fail(c, err)
		return
	}

	q := availability.Query{
		Date:            strings.TrimSpace(c.Query("date")),
		DurationMinutes: duration,
		ServiceIDs:      splitIDs(c.Query("services")),
	}
	res, err := h.Engine.Query(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err)
		return
	}

	slots := availability.Labels(res.Slots)
	metrics.RecordAvailability("ok", len(slots))

	message := "Available slots retrieved successfully"
	if len(slots) == 0 {
		message = "No available slots for this date"
	}
	c.JSON(http.StatusOK, models.AvailabilityResponse{
		Error:    false,
		Date:     res.Date,
		Duration: res.DurationMinutes,
		Slots:    slots,
		Message:  message,
	})
}

func (h *AvailabilityHandler) fail(c *gin.Context, err error) {
	kind := availability.KindOf(err)
	status := http.StatusInternalServerError
	switch kind {
	case availability.KindValidation, availability.KindInvalidDate:
		status = http.StatusBadRequest
	case availability.KindServiceNotFound:
		status = http.StatusNotFound
	}

	if kind == "" {
		kind = availability.KindRepository
	}
	metrics.RecordAvailability(string(kind), 0)

	message := err.Error()
	var ae *availability.Error
	if errors.As(err, &ae) {
		message = ae.Message
	}
	if status == http.StatusInternalServerError {
		h.Logger.Error("availability query failed", zap.String("kind", string(kind)), zap.Error(err))
		message = "Internal Server Error"
	} else {
		h.Logger.Debug("availability query rejected", zap.String("kind", string(kind)), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": true, "kind": kind, "message": message})
}

func splitIDs(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
