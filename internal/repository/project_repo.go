package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KhanhKH069/icnlab-website-fixed/internal/model"
)

// ProjectFilter narrows a project listing.
type ProjectFilter struct {
	Status        string
	Category      string
	PublishedOnly bool
}

// ProjectRepository is the project data-access interface. Join rows are
// managed explicitly: the join tables have no foreign keys, and association
// writes must never create or touch member/publication records.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project, memberIDs, publicationIDs []string) error
	GetByID(ctx context.Context, id string) (*model.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]model.Project, error)
	Update(ctx context.Context, project *model.Project) error
	ReplaceMembers(ctx context.Context, projectID string, memberIDs []string) error
	ReplacePublications(ctx context.Context, projectID string, publicationIDs []string) error
	Delete(ctx context.Context, id string) error
}

type projectRepo struct {
	db *gorm.DB
}

// NewProjectRepo creates the GORM-backed ProjectRepository.
func NewProjectRepo(db *gorm.DB) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, project *model.Project, memberIDs, publicationIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(project).Error; err != nil {
			return err
		}
		if err := insertProjectMembers(tx, project.ProjectID, memberIDs); err != nil {
			return err
		}
		return insertProjectPublications(tx, project.ProjectID, publicationIDs)
	})
}

func (r *projectRepo) GetByID(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).
		Preload("Members").
		Preload("Publications").
		Where("project_id = ?", id).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepo) List(ctx context.Context, filter ProjectFilter) ([]model.Project, error) {
	db := r.db.WithContext(ctx).Model(&model.Project{})

	if filter.PublishedOnly {
		db = db.Where("is_published = ?", true)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}

	var projects []model.Project
	err := db.Preload("Members").
		Preload("Publications").
		Order("start_date DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepo) Update(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(project).Error
}

func (r *projectRepo) ReplaceMembers(ctx context.Context, projectID string, memberIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&model.ProjectMember{}).Error; err != nil {
			return err
		}
		return insertProjectMembers(tx, projectID, memberIDs)
	})
}

func (r *projectRepo) ReplacePublications(ctx context.Context, projectID string, publicationIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&model.ProjectPublication{}).Error; err != nil {
			return err
		}
		return insertProjectPublications(tx, projectID, publicationIDs)
	})
}

// Delete removes the project and its join rows. Nothing else cascades.
func (r *projectRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectPublication{}).Error; err != nil {
			return err
		}
		return tx.Where("project_id = ?", id).Delete(&model.Project{}).Error
	})
}

func insertProjectMembers(tx *gorm.DB, projectID string, memberIDs []string) error {
	if len(memberIDs) == 0 {
		return nil
	}
	rows := make([]model.ProjectMember, 0, len(memberIDs))
	for _, id := range memberIDs {
		rows = append(rows, model.ProjectMember{ProjectID: projectID, MemberID: id})
	}
	return tx.Create(&rows).Error
}

func insertProjectPublications(tx *gorm.DB, projectID string, publicationIDs []string) error {
	if len(publicationIDs) == 0 {
		return nil
	}
	rows := make([]model.ProjectPublication, 0, len(publicationIDs))
	for _, id := range publicationIDs {
		rows = append(rows, model.ProjectPublication{ProjectID: projectID, PublicationID: id})
	}
	return tx.Create(&rows).Error
}
