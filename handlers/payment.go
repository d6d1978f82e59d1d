// File: handlers/payment.go
package handlers

import (
	"net/http"

	"consulta/models"
	"consulta/services/payment"
	"consulta/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler serves cobro tracking.
type PaymentHandler struct {
	Service payment.PaymentService
}

func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

func (h *PaymentHandler) RecordCharge(c *gin.Context) {
	var p models.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment", err.Error())
		return
	}
	created, err := h.Service.RecordCharge(c.Request.Context(), p)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to record charge", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PaymentHandler) MarkPaid(c *gin.Context) {
	if err := h.Service.MarkPaid(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to mark payment paid", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "paid"})
}

func (h *PaymentHandler) ListPending(c *gin.Context) {
	payments, err := h.Service.ListPending(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list pending payments", err.Error())
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) ListBySession(c *gin.Context) {
	payments, err := h.Service.ListBySession(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list session payments", err.Error())
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) ListByPatient(c *gin.Context) {
	payments, err := h.Service.ListByPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list patient payments", err.Error())
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete payment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
