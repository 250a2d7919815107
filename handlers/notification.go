package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/pr4shxnt/ecobin-backend/cron"
	"github.com/pr4shxnt/ecobin-backend/models"
	"github.com/pr4shxnt/ecobin-backend/services/notification"
	"github.com/pr4shxnt/ecobin-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes manual dispatch, the force-run endpoint, and
// notification history and stats.
type NotificationHandler struct {
	Service notification.PushService
	Trigger *cron.ReminderTrigger
}

// Send handles POST /api/admin/notifications/send.
func (h *NotificationHandler) Send(c *gin.Context) {
	var req struct {
		Addresses []models.Address  `json:"addresses"`
		Title     string            `json:"title"`
		Body      string            `json:"body"`
		Type      string            `json:"type,omitempty"`
		Data      map[string]string `json:"data,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	results, err := h.Service.DispatchManual(c.Request.Context(),
		req.Addresses, req.Title, req.Body, req.Type, req.Data, c.GetString("adminID"))
	if err != nil {
		var verr notification.ValidationError
		if errors.As(err, &verr) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid notification request", verr.Reason)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to send notifications", err.Error())
		return
	}

	sent := 0
	for _, r := range results {
		if r.Success {
			sent++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Notification dispatch completed",
		"data": gin.H{
			"attempted": len(results),
			"delivered": sent,
			"results":   results,
		},
	})
}

// ForceReminderRun handles POST /api/admin/notifications/reminders. It shares
// the single-flight trigger with the scheduled worker; a run already in
// flight yields 409.
func (h *NotificationHandler) ForceReminderRun(c *gin.Context) {
	results, err := h.Trigger.Run(c.Request.Context())
	if err != nil {
		if errors.Is(err, cron.ErrRunInProgress) {
			utils.JSONError(c, http.StatusConflict, "A reminder run is already in progress", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Reminder run failed", err.Error())
		return
	}

	delivered := 0
	for _, r := range results {
		if r.Success {
			delivered++
		}
	}
	getLogger(c).Info("Manual reminder run completed",
		zap.Int("attempted", len(results)), zap.Int("delivered", delivered))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Reminder run completed",
		"data": gin.H{
			"attempted": len(results),
			"delivered": delivered,
			"results":   results,
		},
	})
}

// History handles GET /api/admin/notifications/history?address=<json>&limit=.
func (h *NotificationHandler) History(c *gin.Context) {
	raw := c.Query("address")
	if raw == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing address query parameter", "")
		return
	}
	var address models.Address
	if err := json.Unmarshal([]byte(raw), &address); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid address query parameter", err.Error())
		return
	}

	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)

	history, err := h.Service.History(c.Request.Context(), address, limit)
	if err != nil {
		var verr notification.ValidationError
		if errors.As(err, &verr) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid history query", verr.Reason)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch notification history", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": history})
}

// Stats handles GET /api/admin/notifications/stats.
func (h *NotificationHandler) Stats(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to aggregate notification stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

// MarkClicked handles POST /api/admin/notifications/:id/clicked.
func (h *NotificationHandler) MarkClicked(c *gin.Context) {
	err := h.Service.MarkClicked(c.Request.Context(), c.Param("id"))
	if err != nil {
		var nferr notification.NotFoundError
		if errors.As(err, &nferr) {
			utils.JSONError(c, http.StatusNotFound, "Notification not found", "")
			return
		}
		var verr notification.ValidationError
		if errors.As(err, &verr) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", verr.Reason)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to record click", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Notification click recorded"})
}
