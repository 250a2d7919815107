package handlers

import (
	"errors"
	"net/http"

	invoiceRepo "github.com/pr4shxnt/ecobin-backend/database/repository/invoice"
	invoiceSvc "github.com/pr4shxnt/ecobin-backend/services/invoice"
	"github.com/pr4shxnt/ecobin-backend/utils"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler exposes billing document management.
type InvoiceHandler struct {
	Service *invoiceSvc.Service
}

// Create handles POST /api/invoice.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req invoiceSvc.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	inv, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to create invoice", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Invoice created successfully",
		"data":    inv,
	})
}

// List handles GET /api/invoice. A customer query parameter narrows the
// listing to that customer's invoice.
func (h *InvoiceHandler) List(c *gin.Context) {
	if customer := c.Query("customer"); customer != "" {
		inv, err := h.Service.GetByCustomer(c.Request.Context(), customer)
		if err != nil {
			if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
				utils.JSONError(c, http.StatusNotFound, "Invoice not found", "")
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch invoice", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": inv})
		return
	}

	invoices, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list invoices", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": invoices})
}

// Get handles GET /api/invoice/:id.
func (h *InvoiceHandler) Get(c *gin.Context) {
	inv, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Invoice not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch invoice", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": inv})
}

// Update handles PUT /api/invoice/:id.
func (h *InvoiceHandler) Update(c *gin.Context) {
	var req invoiceSvc.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	inv, err := h.Service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Invoice not found", "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Failed to update invoice", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Invoice updated successfully",
		"data":    inv,
	})
}

// Delete handles DELETE /api/invoice/:id.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, invoiceRepo.ErrInvoiceNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Invoice not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete invoice", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Invoice deleted successfully"})
}
