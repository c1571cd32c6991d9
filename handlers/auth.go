package handlers

import (
	"net/http"
	"strings"

	"alcahub/models"
	"alcahub/services/user"
	"alcahub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration, login and password recovery.
type AuthHandler struct {
	Service user.UserService
	Logger  *zap.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(service user.UserService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Service: service, Logger: logger}
}

// RegisterHandler creates a new account.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var input struct {
		Name      string `json:"name" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=6"`
		Phone     string `json:"phone"`
		Role      string `json:"role"`
		Apartment string `json:"apartment"`
		Block     string `json:"block"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	role := input.Role
	if role == "" {
		role = models.RoleResident
	}
	if role != models.RoleResident && role != models.RoleProfessional {
		utils.JSONError(c, http.StatusBadRequest, "invalid role", "role must be morador or prestador")
		return
	}

	u := &models.User{
		Name:      input.Name,
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Password:  input.Password,
		Phone:     input.Phone,
		Role:      role,
		Apartment: input.Apartment,
		Block:     input.Block,
	}

	created, err := h.Service.Register(u)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "registration failed", err.Error())
		return
	}
	h.Logger.Info("user registered", zap.String("userID", created.ID))
	c.JSON(http.StatusCreated, created)
}

// LoginHandler authenticates credentials and returns the user with a token.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, err := h.Service.Authenticate(strings.ToLower(strings.TrimSpace(input.Email)), input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		return
	}
	c.JSON(http.StatusOK, u)
}

// ForgotPasswordHandler issues a reset code. Always answers 200 so the
// endpoint cannot be used to discover which emails have accounts.
func (h *AuthHandler) ForgotPasswordHandler(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.ForgotPassword(strings.ToLower(strings.TrimSpace(input.Email))); err != nil {
		h.Logger.Warn("password reset issuance failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"message": "if the account exists, a reset code was sent"})
}

// ResetPasswordHandler consumes a reset code and sets a new password.
func (h *AuthHandler) ResetPasswordHandler(c *gin.Context) {
	var input struct {
		Email       string `json:"email" binding:"required,email"`
		Code        string `json:"code" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.ResetPassword(strings.ToLower(strings.TrimSpace(input.Email)), input.Code, input.NewPassword); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "password reset failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// SwitchModeHandler toggles the account between morador and prestador.
func (h *AuthHandler) SwitchModeHandler(c *gin.Context) {
	u, err := h.Service.SwitchMode(c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to switch mode", err.Error())
		return
	}
	h.Logger.Info("user switched mode", zap.String("userID", u.ID), zap.String("role", u.Role))
	c.JSON(http.StatusOK, u)
}
