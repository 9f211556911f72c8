package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/KhanhKH069/icnlab-website-fixed/internal/dto"
	"github.com/KhanhKH069/icnlab-website-fixed/internal/repository"
)

// MaintenanceService runs the referential-integrity report. Deletes never
// cascade, so the report surfaces the dangling references they leave behind.
type MaintenanceService interface {
	IntegrityReport(ctx context.Context) (*dto.IntegrityReport, error)
}

type maintenanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMaintenanceService creates the MaintenanceService.
func NewMaintenanceService(repo *repository.Repository, logger *zap.Logger) MaintenanceService {
	return &maintenanceService{repo: repo, logger: logger}
}

func (s *maintenanceService) IntegrityReport(ctx context.Context) (*dto.IntegrityReport, error) {
	projectMembers, err := s.repo.Maintenance.OrphanedProjectMembers(ctx)
	if err != nil {
		s.logger.Error("orphaned project members query failed", zap.Error(err))
		return nil, err
	}
	projectPublications, err := s.repo.Maintenance.OrphanedProjectPublications(ctx)
	if err != nil {
		s.logger.Error("orphaned project publications query failed", zap.Error(err))
		return nil, err
	}
	newsAuthors, err := s.repo.Maintenance.OrphanedNewsAuthors(ctx)
	if err != nil {
		s.logger.Error("orphaned news authors query failed", zap.Error(err))
		return nil, err
	}

	report := &dto.IntegrityReport{
		OrphanedProjectMembers:      toOrphanedRefs(projectMembers),
		OrphanedProjectPublications: toOrphanedRefs(projectPublications),
		OrphanedNewsAuthors:         toOrphanedRefs(newsAuthors),
	}
	report.Clean = len(projectMembers) == 0 && len(projectPublications) == 0 && len(newsAuthors) == 0
	return report, nil
}

func toOrphanedRefs(refs []repository.OrphanedRef) []dto.OrphanedRef {
	out := make([]dto.OrphanedRef, 0, len(refs))
	for _, r := range refs {
		out = append(out, dto.OrphanedRef{SourceID: r.SourceID, TargetID: r.TargetID})
	}
	return out
}
