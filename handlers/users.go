package handlers

import (
	"errors"
	"net/http"

	"chairbook/middleware"
	"chairbook/models"
	"chairbook/services/user"
	"chairbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	Svc    user.UserService
	Logger *zap.Logger
}

func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// CreateAccount handles POST /create-account.
func (h *UserHandler) CreateAccount(c *gin.Context) {
	var reg models.UserRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	res, err := h.Svc.Register(c.Request.Context(), reg)
	switch {
	case errors.Is(err, user.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, "Invalid account details", err.Error())
		return
	case errors.Is(err, user.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, "User already exists with this email", "")
		return
	case err != nil:
		h.Logger.Error("CreateAccount: registration failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error":       false,
		"user":        res,
		"accessToken": res.Token,
		"message":     "Registration Successful",
	})
}

// Login handles POST /login.
func (h *UserHandler) Login(c *gin.Context) {
	var creds struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&creds); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required", err.Error())
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), creds.Email, creds.Password)
	if errors.Is(err, user.ErrInvalidCredentials) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid Credentials", "")
		return
	}
	if err != nil {
		h.Logger.Error("Login: authentication failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error":       false,
		"id":          res.ID,
		"email":       res.Email,
		"accessToken": res.Token,
		"message":     "Login Successful",
	})
}

// GetUser handles GET /get-user for the authenticated caller.
func (h *UserHandler) GetUser(c *gin.Context) {
	u, err := h.Svc.GetUserByID(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if errors.Is(err, user.ErrNotFound) {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.Logger.Error("GetUser: lookup failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"error":   false,
		"user":    u.Public(),
		"message": "",
	})
}
