package handler

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"speedrun-dashboard/internal/auth"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Admin login request body.
type AdminLoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"password123"`
}

type AdminLoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// AdminLogin godoc
// @Summary      Admin login
// @Description  Checks the credentials against ADMIN_USERNAME / ADMIN_PASSWORD_HASH (bcrypt) and issues a JWT for the admin endpoints.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body handler.AdminLoginRequest true "Admin credentials"
// @Success      200 {object} handler.AdminLoginResponse
// @Failure      400 {object} handler.ErrorResponse "Malformed request"
// @Failure      401 {object} handler.ErrorResponse "Invalid credentials"
// @Failure      503 {object} handler.ErrorResponse "Admin access not configured"
// @Router       /admin/login [post]
func AdminLogin(c *gin.Context) {
	adminUser := os.Getenv("ADMIN_USERNAME")
	adminHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminUser == "" || adminHash == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin access is not configured"})
		return
	}

	var credentials AdminLoginRequest
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := json.Unmarshal(rawData, &credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if strings.TrimSpace(credentials.Username) == "" || strings.TrimSpace(credentials.Password) == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if credentials.Username != adminUser {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(adminHash), []byte(credentials.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	tokenString, err := auth.GenerateToken(credentials.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, AdminLoginResponse{Token: tokenString})
}

// AdminRefresh godoc
// @Summary      Force a dataset refresh
// @Description  Refetches and rebuilds the dataset ignoring the public refresh cooldown. (JWT required)
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.RefreshResponse
// @Failure      401 {object} handler.ErrorResponse "Missing or invalid token"
// @Failure      502 {object} handler.ErrorResponse "Upstream API unavailable"
// @Router       /admin/refresh [post]
func AdminRefresh(c *gin.Context) {
	refresh(c, true)
}
