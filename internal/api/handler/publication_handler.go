package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KhanhKH069/icnlab-website-fixed/internal/api/middleware"
	"github.com/KhanhKH069/icnlab-website-fixed/internal/dto"
	"github.com/KhanhKH069/icnlab-website-fixed/internal/service"
	"github.com/KhanhKH069/icnlab-website-fixed/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PublicationHandler serves /api/publications and the admin export.
type PublicationHandler struct {
	svc    service.PublicationService
	export service.ExportService
	logger *zap.Logger
}

// NewPublicationHandler creates the PublicationHandler.
func NewPublicationHandler(svc service.PublicationService, export service.ExportService, logger *zap.Logger) *PublicationHandler {
	return &PublicationHandler{svc: svc, export: export, logger: logger}
}

// List handles GET /api/publications.
func (h *PublicationHandler) List(c *gin.Context) {
	var req dto.PublicationListRequest
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

// Get handles GET /api/publications/:id.
func (h *PublicationHandler) Get(c *gin.Context) {
	pub, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPublicationNotFound) {
			response.NotFound(c, "Publication not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, pub)
}

// Create handles POST /api/publications.
func (h *PublicationHandler) Create(c *gin.Context) {
	var req dto.CreatePublicationRequest
	if !bindBody(c, &req) {
		return
	}

	pub, err := h.svc.Create(c.Request.Context(), &req,
		middleware.UploadedFile(c, "pdfFile"),
		middleware.UploadedFile(c, "image"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, "Publication created", pub)
}

// Update handles PUT /api/publications/:id.
func (h *PublicationHandler) Update(c *gin.Context) {
	var req dto.UpdatePublicationRequest
	if !bindBody(c, &req) {
		return
	}

	pub, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req,
		middleware.UploadedFile(c, "pdfFile"),
		middleware.UploadedFile(c, "image"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, pub)
}

// Delete handles DELETE /api/publications/:id.
func (h *PublicationHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrPublicationNotFound) {
			response.NotFound(c, "Publication not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OKMessage(c, "Publication deleted")
}

// Stats handles GET /api/publications/stats/summary.
func (h *PublicationHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, stats)
}

// Export handles GET /api/export/publications (admin only). The body is the
// workbook itself rather than the JSON envelope.
func (h *PublicationHandler) Export(c *gin.Context) {
	buf, filename, err := h.export.ExportPublications(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrExportNoPublications) {
			response.NotFound(c, "No publications to export")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *PublicationHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPublicationNotFound):
		response.NotFound(c, "Publication not found")
	case errors.Is(err, service.ErrNoAuthors):
		response.BadRequest(c, "At least one author is required")
	case errors.Is(err, service.ErrBadDate):
		response.BadRequest(c, "Invalid date format")
	default:
		response.InternalError(c)
	}
}
