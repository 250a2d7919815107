package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	tenantRepo "github.com/pr4shxnt/ecobin-backend/database/repository/tenant"
	tenantSvc "github.com/pr4shxnt/ecobin-backend/services/tenant"
	"github.com/pr4shxnt/ecobin-backend/utils"

	"github.com/gin-gonic/gin"
)

// TenantHandler exposes tenant registration, login, profile and push
// subscription endpoints.
type TenantHandler struct {
	Service *tenantSvc.Service
}

// Register handles POST /api/tenants/register (multipart form with
// rentalAgreement and photoIdentityProof files).
func (h *TenantHandler) Register(c *gin.Context) {
	req := tenantSvc.RegisterRequest{
		FirstName:      c.PostForm("firstName"),
		LastName:       c.PostForm("lastName"),
		EmailAddress:   c.PostForm("emailAddress"),
		PhoneNumber:    c.PostForm("phoneNumber"),
		Occupation:     c.PostForm("occupation"),
		Employer:       c.PostForm("employer"),
		CurrentAddress: c.PostForm("currentAddress"),
		City:           c.PostForm("city"),
		State:          c.PostForm("state"),
		ZipCode:        c.PostForm("zipCode"),
		Password:       c.PostForm("password"),
	}

	if dob := c.PostForm("dateOfBirth"); dob != "" {
		parsed, err := time.Parse("2006-01-02", dob)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid dateOfBirth", "expected format YYYY-MM-DD")
			return
		}
		req.DateOfBirth = parsed
	}
	if income := c.PostForm("annualIncome"); income != "" {
		parsed, err := strconv.ParseFloat(income, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid annualIncome", "expected a number")
			return
		}
		req.AnnualIncome = parsed
	}

	if file, err := c.FormFile("rentalAgreement"); err == nil {
		req.RentalAgreement = file
	}
	if file, err := c.FormFile("photoIdentityProof"); err == nil {
		req.PhotoIdentityProof = file
	}

	account, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Registration failed", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Tenant registered successfully",
		"data":    account,
	})
}

// Login handles POST /api/tenants/login.
func (h *TenantHandler) Login(c *gin.Context) {
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
		if errors.Is(err, tenantSvc.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successful", "data": result})
}

// Profile handles GET /api/tenants/profile.
func (h *TenantHandler) Profile(c *gin.Context) {
	account, err := h.Service.Profile(c.Request.Context(), c.GetString("tenantID"))
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Tenant not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": account})
}

// Subscribe handles POST /api/tenants/subscriptions.
func (h *TenantHandler) Subscribe(c *gin.Context) {
	var req tenantSvc.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	sub, err := h.Service.Subscribe(c.Request.Context(), c.GetString("tenantID"), req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to register subscription", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Push subscription registered",
		"data":    sub,
	})
}
