package repository

import (
	"context"

	"gorm.io/gorm"
)

// OrphanedRef is one dangling reference: a stored id whose target record no
// longer exists. Deletes do not cascade, so these accumulate by design.
type OrphanedRef struct {
	SourceID string
	TargetID string
}

// MaintenanceRepository runs the referential-integrity queries.
type MaintenanceRepository interface {
	OrphanedProjectMembers(ctx context.Context) ([]OrphanedRef, error)
	OrphanedProjectPublications(ctx context.Context) ([]OrphanedRef, error)
	OrphanedNewsAuthors(ctx context.Context) ([]OrphanedRef, error)
}

type maintenanceRepo struct {
	db *gorm.DB
}

// NewMaintenanceRepo creates the GORM-backed MaintenanceRepository.
func NewMaintenanceRepo(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepo{db: db}
}

func (r *maintenanceRepo) OrphanedProjectMembers(ctx context.Context) ([]OrphanedRef, error) {
	var refs []OrphanedRef
	err := r.db.WithContext(ctx).Raw(`
		SELECT pm.project_id AS source_id, pm.member_id AS target_id
		FROM project_members pm
		LEFT JOIN members m ON m.member_id = pm.member_id
		WHERE m.member_id IS NULL`).Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}

func (r *maintenanceRepo) OrphanedProjectPublications(ctx context.Context) ([]OrphanedRef, error) {
	var refs []OrphanedRef
	err := r.db.WithContext(ctx).Raw(`
		SELECT pp.project_id AS source_id, pp.publication_id AS target_id
		FROM project_publications pp
		LEFT JOIN publications p ON p.publication_id = pp.publication_id
		WHERE p.publication_id IS NULL`).Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}

func (r *maintenanceRepo) OrphanedNewsAuthors(ctx context.Context) ([]OrphanedRef, error) {
	var refs []OrphanedRef
	err := r.db.WithContext(ctx).Raw(`
		SELECT n.news_id AS source_id, n.author_id AS target_id
		FROM news n
		LEFT JOIN users u ON u.user_id = n.author_id
		WHERE u.user_id IS NULL`).Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}
