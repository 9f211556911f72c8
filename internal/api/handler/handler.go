package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KhanhKH069/icnlab-website-fixed/internal/service"
	"github.com/KhanhKH069/icnlab-website-fixed/pkg/response"
)

// Handler bundles the per-resource handlers for the router.
type Handler struct {
	Auth        *AuthHandler
	News        *NewsHandler
	Publication *PublicationHandler
	Project     *ProjectHandler
	Member      *MemberHandler
	Maintenance *MaintenanceHandler
}

// NewHandler wires every handler to its service.
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth, logger),
		News:        NewNewsHandler(svc.News, logger),
		Publication: NewPublicationHandler(svc.Publication, svc.Export, logger),
		Project:     NewProjectHandler(svc.Project, logger),
		Member:      NewMemberHandler(svc.Member, logger),
		Maintenance: NewMaintenanceHandler(svc.Maintenance, logger),
	}
}

// Health reports liveness. It does not touch the database.
func (h *Handler) Health(c *gin.Context) {
	response.OK(c, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
