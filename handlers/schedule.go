package handlers

import (
	"errors"
	"net/http"
	"strconv"

	scheduleRepo "github.com/pr4shxnt/ecobin-backend/database/repository/schedule"
	"github.com/pr4shxnt/ecobin-backend/services/notification"
	scheduleSvc "github.com/pr4shxnt/ecobin-backend/services/schedule"
	"github.com/pr4shxnt/ecobin-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes waste-collection schedule management.
type ScheduleHandler struct {
	Service       scheduleSvc.ScheduleService
	Notifications notification.PushService
}

// Create handles POST /api/admin/schedules.
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req scheduleSvc.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), req, c.GetString("adminID"))
	if err != nil {
		var verr scheduleSvc.ValidationError
		if errors.As(err, &verr) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid schedule", verr.Reason)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create schedule", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Waste schedule created successfully",
		"data":    created,
	})
}

// List handles GET /api/admin/schedules with page/limit/status/zone query params.
func (h *ScheduleHandler) List(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	filter := scheduleRepo.ScheduleFilter{
		Status: c.Query("status"),
		Zone:   c.Query("zone"),
	}

	schedules, pagination, err := h.Service.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list schedules", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       schedules,
		"pagination": pagination,
	})
}

// Get handles GET /api/admin/schedules/:id. The response includes how many
// notifications the schedule has generated so far.
func (h *ScheduleHandler) Get(c *gin.Context) {
	schedule, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Schedule not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch schedule", err.Error())
		return
	}

	var notificationsSent int64
	if h.Notifications != nil {
		notificationsSent, err = h.Notifications.CountForSchedule(c.Request.Context(), schedule.ID)
		if err != nil {
			getLogger(c).Warn("Failed to count schedule notifications",
				zap.String("scheduleId", schedule.ID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"data":              schedule,
		"notificationsSent": notificationsSent,
	})
}

// Update handles PUT /api/admin/schedules/:id.
func (h *ScheduleHandler) Update(c *gin.Context) {
	var update scheduleRepo.ScheduleUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		var verr scheduleSvc.ValidationError
		switch {
		case errors.As(err, &verr):
			utils.JSONError(c, http.StatusBadRequest, "Invalid schedule update", verr.Reason)
		case errors.Is(err, scheduleRepo.ErrScheduleNotFound):
			utils.JSONError(c, http.StatusNotFound, "Schedule not found", "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update schedule", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Waste schedule updated successfully",
		"data":    updated,
	})
}

// Delete handles DELETE /api/admin/schedules/:id.
func (h *ScheduleHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Schedule not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete schedule", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Waste schedule deleted successfully",
	})
}
