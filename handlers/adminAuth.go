package handlers

import (
	"errors"
	"net/http"

	adminRepo "github.com/pr4shxnt/ecobin-backend/database/repository/admin"
	adminSvc "github.com/pr4shxnt/ecobin-backend/services/admin"
	"github.com/pr4shxnt/ecobin-backend/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthHandler exposes admin registration, login and profile endpoints.
type AdminAuthHandler struct {
	Service *adminSvc.AuthService
}

// Register handles POST /api/admin/auth/register.
func (h *AdminAuthHandler) Register(c *gin.Context) {
	var req adminSvc.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	profile, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Registration failed", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Admin registered successfully",
		"data":    profile,
	})
}

// Login handles POST /api/admin/auth/login.
func (h *AdminAuthHandler) Login(c *gin.Context) {
	var req struct {
		EmailAddress string `json:"emailAddress"`
		Password     string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := h.Service.Login(c.Request.Context(), req.EmailAddress, req.Password)
	if err != nil {
		if errors.Is(err, adminSvc.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    result,
	})
}

// Logout handles POST /api/admin/auth/logout.
func (h *AdminAuthHandler) Logout(c *gin.Context) {
	if err := h.Service.Logout(c.Request.Context(), c.GetString("adminID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// Profile handles GET /api/admin/auth/profile.
func (h *AdminAuthHandler) Profile(c *gin.Context) {
	account, err := h.Service.Profile(c.Request.Context(), c.GetString("adminID"))
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Admin not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": account.Profile()})
}

// UpdateProfile handles PUT /api/admin/auth/profile.
func (h *AdminAuthHandler) UpdateProfile(c *gin.Context) {
	var update adminRepo.AdminUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	account, err := h.Service.UpdateProfile(c.Request.Context(), c.GetString("adminID"), update)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Admin not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update profile", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"data":    account.Profile(),
	})
}
