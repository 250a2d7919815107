package handlers

import (
	"errors"
	"net/http"

	"github.com/pr4shxnt/ecobin-backend/services/intelligence"
	"github.com/pr4shxnt/ecobin-backend/utils"

	"github.com/gin-gonic/gin"
)

// ClassifyHandler exposes AI waste classification.
type ClassifyHandler struct {
	Classifier *intelligence.WasteClassifier
}

// Classify handles POST /api/classify with a base64-encoded image.
func (h *ClassifyHandler) Classify(c *gin.Context) {
	var req struct {
		ImageData string `json:"imageData"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.ImageData == "" {
		utils.JSONError(c, http.StatusBadRequest, "imageData (base64 string) is required", "")
		return
	}

	result, err := h.Classifier.Classify(c.Request.Context(), req.ImageData)
	if err != nil {
		if errors.Is(err, intelligence.ErrUnparseableReply) {
			// Surface the raw model reply so the caller can inspect it.
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to parse JSON response from the model",
				"reply":   result.Raw,
			})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Classification failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reply": result})
}
