package handlers

import (
	"net/http"

	"promaallem/services/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes account registration and sign-in.
type AuthHandler struct {
	Service auth.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(service auth.AuthService) *AuthHandler {
	return &AuthHandler{Service: service}
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var input auth.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	usr, err := h.Service.Register(input)
	if err != nil {
		respondError(c, err)
		return
	}

	getLogger(c).Info("User registered", zap.String("userID", usr.ID), zap.String("role", usr.Role))
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    usr,
	})
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
