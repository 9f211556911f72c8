package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KhanhKH069/icnlab-website-fixed/internal/dto"
	"github.com/KhanhKH069/icnlab-website-fixed/internal/model"
	"github.com/KhanhKH069/icnlab-website-fixed/internal/repository"
)

var (
	ErrNewsNotFound = errors.New("news not found")
	ErrSlugTaken    = errors.New("news with this title already exists")
	ErrBadDate      = errors.New("invalid date format")
)

// NewsService is the news business interface. listAll distinguishes the
// authenticated admin listing from the public one.
type NewsService interface {
	List(ctx context.Context, req *dto.NewsListRequest, listAll bool) ([]model.News, int64, error)
	// GetByID returns the post and bumps its view counter: reading a post is
	// deliberately not idempotent, matching the public site's behavior.
	GetByID(ctx context.Context, id string) (*model.News, error)
	Create(ctx context.Context, req *dto.CreateNewsRequest, authorID, imageURL string) (*model.News, error)
	Update(ctx context.Context, id string, req *dto.UpdateNewsRequest, imageURL string) (*model.News, error)
	Delete(ctx context.Context, id string) error
}

type newsService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNewsService creates the NewsService.
func NewNewsService(repo *repository.Repository, logger *zap.Logger) NewsService {
	return &newsService{repo: repo, logger: logger}
}

func (s *newsService) List(ctx context.Context, req *dto.NewsListRequest, listAll bool) ([]model.News, int64, error) {
	filter := repository.NewsFilter{
		Category:      req.Category,
		Search:        req.Search,
		PublishedOnly: !listAll,
		Offset:        (req.GetPage() - 1) * req.GetLimit(),
		Limit:         req.GetLimit(),
	}

	items, total, err := s.repo.News.List(ctx, filter)
	if err != nil {
		s.logger.Error("list news failed", zap.Error(err))
		return nil, 0, err
	}
	return items, total, nil
}

func (s *newsService) GetByID(ctx context.Context, id string) (*model.News, error) {
	news, err := s.repo.News.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		s.logger.Error("get news failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if err := s.repo.News.IncrementViews(ctx, id); err != nil {
		s.logger.Error("increment views failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	news.Views++

	return news, nil
}

func (s *newsService) Create(ctx context.Context, req *dto.CreateNewsRequest, authorID, imageURL string) (*model.News, error) {
	news := &model.News{
		Title:       req.Title,
		Slug:        Slugify(req.Title),
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Category:    req.Category,
		Tags:        req.Tags.Values(),
		AuthorID:    authorID,
		IsPublished: true,
		Image:       imageURL,
	}
	if news.Excerpt == "" {
		news.Excerpt = MakeExcerpt(req.Content)
	}
	if req.PublishedDate != "" {
		t, ok := dto.ParseDate(req.PublishedDate)
		if !ok {
			return nil, ErrBadDate
		}
		news.PublishedDate = t
	} else {
		news.PublishedDate = time.Now()
	}
	if req.IsPublished != nil {
		news.IsPublished = req.IsPublished.Bool()
	}
	if news.Tags == nil {
		news.Tags = model.StringArray{}
	}

	if err := s.repo.News.Create(ctx, news); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		s.logger.Error("create news failed", zap.Error(err))
		return nil, err
	}

	return s.populate(ctx, news)
}

func (s *newsService) Update(ctx context.Context, id string, req *dto.UpdateNewsRequest, imageURL string) (*model.News, error) {
	news, err := s.repo.News.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		s.logger.Error("get news failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Title != nil {
		news.Title = *req.Title
		news.Slug = Slugify(*req.Title)
	}
	if req.Content != nil {
		news.Content = *req.Content
	}
	if req.Excerpt != nil {
		news.Excerpt = *req.Excerpt
	}
	if req.Category != nil {
		news.Category = *req.Category
	}
	if req.Tags != nil {
		news.Tags = req.Tags.Values()
	}
	if req.PublishedDate != nil {
		t, ok := dto.ParseDate(*req.PublishedDate)
		if !ok {
			return nil, ErrBadDate
		}
		news.PublishedDate = t
	}
	if req.IsPublished != nil {
		news.IsPublished = req.IsPublished.Bool()
	}
	if imageURL != "" {
		// The previous file stays on disk; see DESIGN.md.
		news.Image = imageURL
	}

	if err := s.repo.News.Update(ctx, news); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		s.logger.Error("update news failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.populate(ctx, news)
}

func (s *newsService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.News.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNewsNotFound
		}
		s.logger.Error("get news failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.News.Delete(ctx, id); err != nil {
		s.logger.Error("delete news failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// populate reloads the record with its author reference resolved.
func (s *newsService) populate(ctx context.Context, news *model.News) (*model.News, error) {
	full, err := s.repo.News.GetByID(ctx, news.NewsID)
	if err != nil {
		// The write succeeded; return what we have.
		return news, nil
	}
	return full, nil
}

// Slugify derives the URL slug from a title: lowercase, runs of
// non-alphanumerics collapsed to a single hyphen, no leading or trailing
// hyphen. "Hello, World!" -> "hello-world".
func Slugify(title string) string {
	var b strings.Builder
	prevHyphen := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevHyphen = false
		} else if !prevHyphen && b.Len() > 0 {
			b.WriteByte('-')
			prevHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// excerptLength is the auto-generated excerpt size.
const excerptLength = 200

// MakeExcerpt truncates content to the first 200 characters plus an ellipsis.
func MakeExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) > excerptLength {
		runes = runes[:excerptLength]
	}
	return string(runes) + "..."
}
