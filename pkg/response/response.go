package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the uniform response envelope shared by every route.
type Body struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message,omitempty"`
	Data       interface{}  `json:"data,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
}

// FieldError describes a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Pagination is the list metadata block.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
}

// NewPagination computes the page count from a total and a page size.
func NewPagination(total int64, page, limit int) *Pagination {
	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}
	return &Pagination{Total: total, Page: page, Pages: pages}
}

// ── success responses ──

// OK writes a 200 with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Body{Success: true, Data: data})
}

// OKMessage writes a 200 with a message and no data.
func OKMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Body{Success: true, Message: message})
}

// Created writes a 201 with a message and data.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Body{Success: true, Message: message, Data: data})
}

// OKPage writes a 200 list response with pagination metadata.
func OKPage(c *gin.Context, data interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, Body{
		Success:    true,
		Data:       data,
		Pagination: NewPagination(total, page, limit),
	})
}

// ── error responses ──

// Error writes a failure envelope with the given status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Body{Success: false, Message: message})
}

// ValidationFailed writes a 400 with field-level details.
func ValidationFailed(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusBadRequest, Body{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	})
}

// BadRequest writes a 400.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized writes a 401.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden writes a 403.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound writes a 404.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError writes a 500 without leaking internals.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Server error")
}
