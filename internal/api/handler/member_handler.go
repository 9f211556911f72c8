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

// MemberHandler serves /api/members.
type MemberHandler struct {
	svc    service.MemberService
	logger *zap.Logger
}

// NewMemberHandler creates the MemberHandler.
func NewMemberHandler(svc service.MemberService, logger *zap.Logger) *MemberHandler {
	return &MemberHandler{svc: svc, logger: logger}
}

// List handles GET /api/members. Anonymous callers see active members only.
func (h *MemberHandler) List(c *gin.Context) {
	var req dto.MemberListRequest
	if !bindQuery(c, &req) {
		return
	}

	members, err := h.svc.List(c.Request.Context(), &req, isAuthenticated(c))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, members)
}

// Get handles GET /api/members/:id.
func (h *MemberHandler) Get(c *gin.Context) {
	member, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			response.NotFound(c, "Member not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, member)
}

// Create handles POST /api/members.
func (h *MemberHandler) Create(c *gin.Context) {
	var req dto.CreateMemberRequest
	if !bindBody(c, &req) {
		return
	}

	member, err := h.svc.Create(c.Request.Context(), &req, middleware.UploadedFile(c, "photo"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, "Member created", member)
}

// Update handles PUT /api/members/:id.
func (h *MemberHandler) Update(c *gin.Context) {
	var req dto.UpdateMemberRequest
	if !bindBody(c, &req) {
		return
	}

	member, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req, middleware.UploadedFile(c, "photo"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, member)
}

// Delete handles DELETE /api/members/:id.
func (h *MemberHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			response.NotFound(c, "Member not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OKMessage(c, "Member deleted")
}

func (h *MemberHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMemberNotFound):
		response.NotFound(c, "Member not found")
	case errors.Is(err, service.ErrMemberEmailTaken):
		response.BadRequest(c, "Member with this email already exists")
	case errors.Is(err, service.ErrBadDate):
		response.BadRequest(c, "Invalid date format")
	default:
		response.InternalError(c)
	}
}
