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

// ProjectHandler serves /api/projects.
type ProjectHandler struct {
	svc    service.ProjectService
	logger *zap.Logger
}

// NewProjectHandler creates the ProjectHandler.
func NewProjectHandler(svc service.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, logger: logger}
}

// List handles GET /api/projects. Projects are not paginated; the catalog
// stays small.
func (h *ProjectHandler) List(c *gin.Context) {
	var req dto.ProjectListRequest
	if !bindQuery(c, &req) {
		return
	}

	projects, err := h.svc.List(c.Request.Context(), &req, isAuthenticated(c))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, projects)
}

// Get handles GET /api/projects/:id.
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, project)
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if !bindBody(c, &req) {
		return
	}

	project, err := h.svc.Create(c.Request.Context(), &req, middleware.UploadedFile(c, "image"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, "Project created", project)
}

// Update handles PUT /api/projects/:id.
func (h *ProjectHandler) Update(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if !bindBody(c, &req) {
		return
	}

	project, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req, middleware.UploadedFile(c, "image"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, project)
}

// Delete handles DELETE /api/projects/:id.
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OKMessage(c, "Project deleted")
}

func (h *ProjectHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		response.NotFound(c, "Project not found")
	case errors.Is(err, service.ErrBadDate):
		response.BadRequest(c, "Invalid date format")
	default:
		response.InternalError(c)
	}
}
