package service

import (
	"go.uber.org/zap"

	"github.com/KhanhKH069/icnlab-website-fixed/config"
	"github.com/KhanhKH069/icnlab-website-fixed/internal/repository"
	"github.com/KhanhKH069/icnlab-website-fixed/pkg/jwt"
	"github.com/KhanhKH069/icnlab-website-fixed/pkg/redis"
)

// Service aggregates all business-layer interfaces.
type Service struct {
	Auth        AuthService
	News        NewsService
	Publication PublicationService
	Project     ProjectService
	Member      MemberService
	Export      ExportService
	Maintenance MaintenanceService
}

// NewService builds the Service aggregate.
func NewService(cfg *config.Config, repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		News:        NewNewsService(repo, logger),
		Publication: NewPublicationService(repo, logger),
		Project:     NewProjectService(repo, logger),
		Member:      NewMemberService(repo, logger),
		Export:      NewExportService(repo, logger),
		Maintenance: NewMaintenanceService(repo, logger),
	}
}
