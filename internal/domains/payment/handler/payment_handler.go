package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/payment/model"
	"library-backend/internal/domains/payment/service"
	"library-backend/internal/shared/response"
)

type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// PayLateFees - POST /v1/payments/late-fees
func (h *Handler) PayLateFees(c *gin.Context) {
	var req model.PayFeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.PayLateFees(c.Request.Context(), req.PatronID, req.BookID)
	if err != nil {
		response.InternalServerError(c, "Failed to process payment")
		return
	}

	response.Result(c, result.Result, http.StatusOK, gin.H{
		"message":        result.Message,
		"transaction_id": result.TransactionID,
	})
}

// RefundLateFeePayment - POST /v1/payments/refunds
func (h *Handler) RefundLateFeePayment(c *gin.Context) {
	var req model.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.RefundLateFeePayment(c.Request.Context(), req.TransactionID, req.Amount)
	if err != nil {
		response.InternalServerError(c, "Failed to process refund")
		return
	}

	response.Result(c, result, http.StatusOK, nil)
}
