package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/KhanhKH069/icnlab-website-fixed/internal/model"
)

// PublicationFilter narrows a publication listing.
type PublicationFilter struct {
	Year          int
	Type          string
	Search        string
	PublishedOnly bool
	Offset        int
	Limit         int
}

// PublicationStats aggregates the published records.
type PublicationStats struct {
	Total          int64
	TotalCitations int64
	ByYear         []YearCount
	ByType         []TypeCount
}

// YearCount is a per-year bucket.
type YearCount struct {
	Year  int
	Count int64
}

// TypeCount is a per-type bucket.
type TypeCount struct {
	Type  string
	Count int64
}

// PublicationRepository is the publication data-access interface.
type PublicationRepository interface {
	Create(ctx context.Context, pub *model.Publication) error
	GetByID(ctx context.Context, id string) (*model.Publication, error)
	List(ctx context.Context, filter PublicationFilter) ([]model.Publication, int64, error)
	ListAll(ctx context.Context) ([]model.Publication, error)
	Update(ctx context.Context, pub *model.Publication) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*PublicationStats, error)
}

type publicationRepo struct {
	db *gorm.DB
}

// NewPublicationRepo creates the GORM-backed PublicationRepository.
func NewPublicationRepo(db *gorm.DB) PublicationRepository {
	return &publicationRepo{db: db}
}

func (r *publicationRepo) Create(ctx context.Context, pub *model.Publication) error {
	return r.db.WithContext(ctx).Create(pub).Error
}

func (r *publicationRepo) GetByID(ctx context.Context, id string) (*model.Publication, error) {
	var pub model.Publication
	err := r.db.WithContext(ctx).Where("publication_id = ?", id).First(&pub).Error
	if err != nil {
		return nil, err
	}
	return &pub, nil
}

func (r *publicationRepo) List(ctx context.Context, filter PublicationFilter) ([]model.Publication, int64, error) {
	var (
		items []model.Publication
		total int64
	)

	db := r.db.WithContext(ctx).Model(&model.Publication{})

	if filter.PublishedOnly {
		db = db.Where("is_published = ?", true)
	}
	if filter.Year != 0 {
		db = db.Where("year = ?", filter.Year)
	}
	if filter.Type != "" {
		db = db.Where("type = ?", filter.Type)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		db = db.Where(
			"title ILIKE ? OR venue ILIKE ? OR abstract ILIKE ? OR array_to_string(authors, ' ') ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Order("year DESC, created_at DESC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *publicationRepo) ListAll(ctx context.Context) ([]model.Publication, error) {
	var items []model.Publication
	err := r.db.WithContext(ctx).
		Order("year DESC, created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *publicationRepo) Update(ctx context.Context, pub *model.Publication) error {
	return r.db.WithContext(ctx).Save(pub).Error
}

func (r *publicationRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("publication_id = ?", id).Delete(&model.Publication{}).Error
}

func (r *publicationRepo) Stats(ctx context.Context) (*PublicationStats, error) {
	stats := &PublicationStats{}

	published := r.db.WithContext(ctx).
		Model(&model.Publication{}).
		Where("is_published = ?", true)

	row := struct {
		Total     int64
		Citations int64
	}{}
	if err := published.Session(&gorm.Session{}).
		Select("COUNT(*) AS total, COALESCE(SUM(citations), 0) AS citations").
		Scan(&row).Error; err != nil {
		return nil, err
	}
	stats.Total = row.Total
	stats.TotalCitations = row.Citations

	if err := published.Session(&gorm.Session{}).
		Select("year, COUNT(*) AS count").
		Group("year").
		Order("year DESC").
		Scan(&stats.ByYear).Error; err != nil {
		return nil, err
	}

	if err := published.Session(&gorm.Session{}).
		Select("type, COUNT(*) AS count").
		Group("type").
		Order("count DESC").
		Scan(&stats.ByType).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
