package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/borrowing/model"
	"library-backend/internal/domains/borrowing/service"
	"library-backend/internal/shared/response"
	"library-backend/internal/shared/validator"
)

type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// BorrowBook - POST /v1/borrow
func (h *Handler) BorrowBook(c *gin.Context) {
	var req model.BorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid book ID.")
		return
	}

	result, err := h.service.BorrowBook(c.Request.Context(), req.PatronID, req.BookID)
	if err != nil {
		response.InternalServerError(c, "Failed to borrow book")
		return
	}

	response.Result(c, result, http.StatusOK, nil)
}

// ReturnBook - POST /v1/return
func (h *Handler) ReturnBook(c *gin.Context) {
	var req model.ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid book ID.")
		return
	}

	result, err := h.service.ReturnBook(c.Request.Context(), req.PatronID, req.BookID)
	if err != nil {
		response.InternalServerError(c, "Failed to return book")
		return
	}

	response.Result(c, result, http.StatusOK, nil)
}

// PatronStatus - GET /v1/patrons/:patron_id/status
func (h *Handler) PatronStatus(c *gin.Context) {
	patronID := c.Param("patron_id")
	if err := validator.ValidatePatronID(patronID); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	report, err := h.service.GetPatronStatusReport(c.Request.Context(), patronID)
	if err != nil {
		response.InternalServerError(c, "Failed to build status report")
		return
	}

	response.Success(c, http.StatusOK, report)
}

// LateFee - GET /v1/patrons/:patron_id/books/:book_id/late-fee
func (h *Handler) LateFee(c *gin.Context) {
	patronID := c.Param("patron_id")

	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid book ID.")
		return
	}

	fee, err := h.service.CalculateLateFee(c.Request.Context(), patronID, bookID)
	if err != nil {
		response.InternalServerError(c, "Failed to calculate late fee")
		return
	}

	response.Success(c, http.StatusOK, fee)
}
