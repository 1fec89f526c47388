package handlers

import (
	"fmt"
	"net/http"

	"chairbook/metrics"
	"chairbook/models"
	"chairbook/services/tasks"
	"chairbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EmailHandler struct {
	Mailer        tasks.Mailer
	BusinessEmail string
	Logger        *zap.Logger
}

func NewEmailHandler(mailer tasks.Mailer, businessEmail string, logger *zap.Logger) *EmailHandler {
	return &EmailHandler{Mailer: mailer, BusinessEmail: businessEmail, Logger: logger}
}

// Contact handles POST /contact by queueing the message for the salon inbox.
func (h *EmailHandler) Contact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Name, email and message are required", err.Error())
		return
	}
	if h.BusinessEmail == "" {
		utils.JSONError(c, http.StatusServiceUnavailable, "Contact form is not configured", "")
		return
	}

	payload := models.EmailPayload{
		To:      h.BusinessEmail,
		Subject: fmt.Sprintf("Contact form: %s", req.Name),
		Body:    fmt.Sprintf("From: %s <%s>\nPhone: %s\n\n%s\n", req.Name, req.Email, req.Phone, req.Message),
	}
	h.enqueue(c, "contact", payload, "Message sent successfully")
}

// Subscribe handles POST /subscribe by queueing a welcome email.
func (h *EmailHandler) Subscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "A valid email is required", err.Error())
		return
	}

	payload := models.EmailPayload{
		To:      req.Email,
		Subject: "Thanks for subscribing",
		Body:    "You're on the list. We'll let you know about openings and new services.\n",
	}
	h.enqueue(c, "subscribe", payload, "Subscribed successfully")
}

func (h *EmailHandler) enqueue(c *gin.Context, kind string, payload models.EmailPayload, message string) {
	if err := h.Mailer.EnqueueEmail(c.Request.Context(), payload); err != nil {
		metrics.RecordEmail(kind, "error")
		h.Logger.Error("failed to queue email", zap.String("kind", kind), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	metrics.RecordEmail(kind, "queued")
	c.JSON(http.StatusOK, gin.H{"error": false, "message": message})
}
