package handlers

import (
	"errors"
	"net/http"

	landlordRepo "github.com/pr4shxnt/ecobin-backend/database/repository/landlord"
	landlordSvc "github.com/pr4shxnt/ecobin-backend/services/landlord"
	"github.com/pr4shxnt/ecobin-backend/utils"

	"github.com/gin-gonic/gin"
)

// LandlordHandler exposes landlord registration, login and profile endpoints.
type LandlordHandler struct {
	Service *landlordSvc.Service
}

// Register handles POST /api/landlords/register (multipart form with
// houseDocuments and proofOfAddress files).
func (h *LandlordHandler) Register(c *gin.Context) {
	req := landlordSvc.RegisterRequest{
		FirstName:    c.PostForm("firstName"),
		LastName:     c.PostForm("lastName"),
		EmailAddress: c.PostForm("emailAddress"),
		PhoneNumber:  c.PostForm("phoneNumber"),
		Address:      c.PostForm("address"),
		City:         c.PostForm("city"),
		State:        c.PostForm("state"),
		ZipCode:      c.PostForm("zipCode"),
		Password:     c.PostForm("password"),
	}

	if file, err := c.FormFile("houseDocuments"); err == nil {
		req.HouseDocuments = file
	}
	if file, err := c.FormFile("proofOfAddress"); err == nil {
		req.ProofOfAddress = file
	}

	account, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Registration failed", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Landlord registered successfully",
		"data":    account,
	})
}

// Login handles POST /api/landlords/login.
func (h *LandlordHandler) Login(c *gin.Context) {
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
		if errors.Is(err, landlordSvc.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successful", "data": result})
}

// Profile handles GET /api/landlords/profile.
func (h *LandlordHandler) Profile(c *gin.Context) {
	account, err := h.Service.Profile(c.Request.Context(), c.GetString("landlordID"))
	if err != nil {
		if errors.Is(err, landlordRepo.ErrLandlordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Landlord not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": account})
}
