package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KhanhKH069/icnlab-website-fixed/internal/service"
	"github.com/KhanhKH069/icnlab-website-fixed/pkg/response"
)

// MaintenanceHandler serves the admin maintenance routes.
type MaintenanceHandler struct {
	svc    service.MaintenanceService
	logger *zap.Logger
}

// NewMaintenanceHandler creates the MaintenanceHandler.
func NewMaintenanceHandler(svc service.MaintenanceService, logger *zap.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{svc: svc, logger: logger}
}

// Integrity handles GET /api/admin/integrity. Deletes never cascade, so this
// is where the dangling references surface.
func (h *MaintenanceHandler) Integrity(c *gin.Context) {
	report, err := h.svc.IntegrityReport(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, report)
}
