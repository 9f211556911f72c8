package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KhanhKH069/icnlab-website-fixed/internal/api/middleware"
	"github.com/KhanhKH069/icnlab-website-fixed/internal/dto"
	"github.com/KhanhKH069/icnlab-website-fixed/internal/service"
	"github.com/KhanhKH069/icnlab-website-fixed/pkg/response"
)

// NewsHandler serves /api/news.
type NewsHandler struct {
	svc    service.NewsService
	logger *zap.Logger
}

// NewNewsHandler creates the NewsHandler.
func NewNewsHandler(svc service.NewsService, logger *zap.Logger) *NewsHandler {
	return &NewsHandler{svc: svc, logger: logger}
}

// List handles GET /api/news. Anonymous callers see published posts only.
func (h *NewsHandler) List(c *gin.Context) {
	var req dto.NewsListRequest
	if !bindQuery(c, &req) {
		return
	}

	items, total, err := h.svc.List(c.Request.Context(), &req, isAuthenticated(c))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, items, total, req.GetPage(), req.GetLimit())
}

// Get handles GET /api/news/:id and bumps the view counter.
func (h *NewsHandler) Get(c *gin.Context) {
	news, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNewsNotFound) {
			response.NotFound(c, "News not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, news)
}

// Create handles POST /api/news.
func (h *NewsHandler) Create(c *gin.Context) {
	var req dto.CreateNewsRequest
	if !bindBody(c, &req) {
		return
	}

	news, err := h.svc.Create(c.Request.Context(), &req, userID(c), middleware.UploadedFile(c, "image"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, "News created", news)
}

// Update handles PUT /api/news/:id.
func (h *NewsHandler) Update(c *gin.Context) {
	var req dto.UpdateNewsRequest
	if !bindBody(c, &req) {
		return
	}

	news, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req, middleware.UploadedFile(c, "image"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, news)
}

// Delete handles DELETE /api/news/:id.
func (h *NewsHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNewsNotFound) {
			response.NotFound(c, "News not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OKMessage(c, "News deleted")
}

func (h *NewsHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNewsNotFound):
		response.NotFound(c, "News not found")
	case errors.Is(err, service.ErrSlugTaken):
		response.BadRequest(c, "News with this title already exists")
	case errors.Is(err, service.ErrBadDate):
		response.BadRequest(c, "Invalid date format")
	default:
		response.InternalError(c)
	}
}
