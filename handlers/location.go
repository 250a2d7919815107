package handlers

import (
	"errors"
	"net/http"

	adminRepo "github.com/pr4shxnt/ecobin-backend/database/repository/admin"
	scheduleRepo "github.com/pr4shxnt/ecobin-backend/database/repository/schedule"
	"github.com/pr4shxnt/ecobin-backend/models"
	adminSvc "github.com/pr4shxnt/ecobin-backend/services/admin"
	"github.com/pr4shxnt/ecobin-backend/utils"

	"github.com/gin-gonic/gin"
)

// LocationHandler exposes collector live tracking and zone route assembly.
type LocationHandler struct {
	Service *adminSvc.LocationService
}

// UpdateLocation handles POST /api/admin/location/update.
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	var coords models.Coordinates
	if err := c.ShouldBindJSON(&coords); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	account, err := h.Service.UpdateLocation(c.Request.Context(), c.GetString("adminID"), coords)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Admin not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update location", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Location updated",
		"data":    account.CurrentLocation,
	})
}

// GetLocation handles GET /api/admin/location.
func (h *LocationHandler) GetLocation(c *gin.Context) {
	location, err := h.Service.GetLocation(c.Request.Context(), c.GetString("adminID"))
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Admin not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch location", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": location})
}

// GoOffline handles POST /api/admin/location/offline.
func (h *LocationHandler) GoOffline(c *gin.Context) {
	if err := h.Service.GoOffline(c.Request.Context(), c.GetString("adminID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to go offline", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Live tracking stopped"})
}

// OnlineAdmins handles GET /api/admin/location/online-admins.
func (h *LocationHandler) OnlineAdmins(c *gin.Context) {
	admins, err := h.Service.OnlineAdmins(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch online admins", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": admins})
}

// AllRoutes handles GET /api/admin/routes.
func (h *LocationHandler) AllRoutes(c *gin.Context) {
	routes, err := h.Service.AllRoutes(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to assemble routes", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": routes})
}

// RouteForZone handles GET /api/admin/routes/:zone.
func (h *LocationHandler) RouteForZone(c *gin.Context) {
	route, err := h.Service.RouteForZone(c.Request.Context(), c.Param("zone"))
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			utils.JSONError(c, http.StatusNotFound, "No active schedule for zone", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to assemble route", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": route})
}

// UpdateCollectionStatus handles POST /api/admin/routes/collection-status.
func (h *LocationHandler) UpdateCollectionStatus(c *gin.Context) {
	var req adminSvc.CollectionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.Service.UpdateCollectionStatus(c.Request.Context(), c.GetString("adminID"), req); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Schedule not found", "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Failed to update collection status", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Collection status recorded"})
}
