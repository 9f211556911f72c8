package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KhanhKH069/icnlab-website-fixed/internal/dto"
	"github.com/KhanhKH069/icnlab-website-fixed/internal/service"
	"github.com/KhanhKH069/icnlab-website-fixed/pkg/response"
)

// AuthHandler serves /api/auth.
type AuthHandler struct {
	svc    service.AuthService
	logger *zap.Logger
}

// NewAuthHandler creates the AuthHandler.
func NewAuthHandler(svc service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, logger: logger}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindBody(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(c, "Invalid email or password")
		case errors.Is(err, service.ErrAccountDisabled):
			response.Unauthorized(c, "Account is deactivated")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, resp)
}

// Register handles POST /api/auth/register (admin only).
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindBody(c, &req) {
		return
	}

	user, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.BadRequest(c, "User with this email already exists")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, "User registered", user)
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.svc.GetUser(c.Request.Context(), userID(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}

// ChangePassword handles PUT /api/auth/change-password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if !bindBody(c, &req) {
		return
	}

	if err := h.svc.ChangePassword(c.Request.Context(), userID(c), &req); err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			response.Unauthorized(c, "Current password is incorrect")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "User not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OKMessage(c, "Password changed")
}

// Logout handles POST /api/auth/logout. The token is revoked for its
// remaining lifetime; without redis it simply ages out.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := tokenClaims(c)
	if claims == nil {
		response.Unauthorized(c, "Not authorized")
		return
	}

	if err := h.svc.Logout(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OKMessage(c, "Logged out")
}
