package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/catalog/model"
	"library-backend/internal/domains/catalog/service"
	"library-backend/internal/shared/response"
)

// Handler - thin HTTP layer over the catalog service
type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// AddBook - POST /v1/books
func (h *Handler) AddBook(c *gin.Context) {
	var req model.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.AddBook(c.Request.Context(), req)
	if err != nil {
		response.InternalServerError(c, "Failed to add book")
		return
	}

	response.Result(c, result, http.StatusCreated, nil)
}

// ListBooks - GET /v1/books
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.service.GetAllBooks(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list books")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, books, &response.Meta{Total: len(books)})
}

// SearchBooks - GET /v1/books/search?q=<query>&field=<title|author|isbn>
func (h *Handler) SearchBooks(c *gin.Context) {
	req := model.SearchBooksRequest{
		Query: c.Query("q"),
		Field: model.SearchField(c.DefaultQuery("field", "title")),
	}

	books, err := h.service.SearchBooks(c.Request.Context(), req)
	if err != nil {
		if !req.Field.Valid() {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, "Failed to search books")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, books, &response.Meta{Total: len(books)})
}
