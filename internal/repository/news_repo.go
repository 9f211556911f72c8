package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/KhanhKH069/icnlab-website-fixed/internal/model"
)

// NewsFilter narrows a news listing.
type NewsFilter struct {
	Category      string
	Search        string
	PublishedOnly bool
	Offset        int
	Limit         int
}

// NewsRepository is the news data-access interface. IncrementViews is a
// separate operation so the read path stays idempotent.
type NewsRepository interface {
	Create(ctx context.Context, news *model.News) error
	GetByID(ctx context.Context, id string) (*model.News, error)
	List(ctx context.Context, filter NewsFilter) ([]model.News, int64, error)
	Update(ctx context.Context, news *model.News) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
}

type newsRepo struct {
	db *gorm.DB
}

// NewNewsRepo creates the GORM-backed NewsRepository.
func NewNewsRepo(db *gorm.DB) NewsRepository {
	return &newsRepo{db: db}
}

func (r *newsRepo) Create(ctx context.Context, news *model.News) error {
	return r.db.WithContext(ctx).Omit("Author").Create(news).Error
}

func (r *newsRepo) GetByID(ctx context.Context, id string) (*model.News, error) {
	var news model.News
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("news_id = ?", id).
		First(&news).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

func (r *newsRepo) List(ctx context.Context, filter NewsFilter) ([]model.News, int64, error) {
	var (
		items []model.News
		total int64
	)

	db := r.db.WithContext(ctx).Model(&model.News{})

	if filter.PublishedOnly {
		db = db.Where("is_published = ?", true)
	}
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		db = db.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Author").
		Order("published_date DESC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *newsRepo) Update(ctx context.Context, news *model.News) error {
	return r.db.WithContext(ctx).Omit("Author").Save(news).Error
}

func (r *newsRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("news_id = ?", id).Delete(&model.News{}).Error
}

// IncrementViews bumps the counter in a single UPDATE, so concurrent reads of
// the same post cannot lose increments.
func (r *newsRepo) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&model.News{}).
		Where("news_id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
