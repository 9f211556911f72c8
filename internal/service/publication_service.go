package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KhanhKH069/icnlab-website-fixed/internal/dto"
	"github.com/KhanhKH069/icnlab-website-fixed/internal/model"
	"github.com/KhanhKH069/icnlab-website-fixed/internal/repository"
)

var (
	ErrPublicationNotFound = errors.New("publication not found")
	ErrNoAuthors           = errors.New("at least one author required")
)

// PublicationService is the publication business interface.
type PublicationService interface {
	List(ctx context.Context, req *dto.PublicationListRequest, listAll bool) ([]model.Publication, int64, error)
	GetByID(ctx context.Context, id string) (*model.Publication, error)
	Create(ctx context.Context, req *dto.CreatePublicationRequest, pdfURL, imageURL string) (*model.Publication, error)
	Update(ctx context.Context, id string, req *dto.UpdatePublicationRequest, pdfURL, imageURL string) (*model.Publication, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*dto.PublicationStats, error)
}

type publicationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPublicationService creates the PublicationService.
func NewPublicationService(repo *repository.Repository, logger *zap.Logger) PublicationService {
	return &publicationService{repo: repo, logger: logger}
}

func (s *publicationService) List(ctx context.Context, req *dto.PublicationListRequest, listAll bool) ([]model.Publication, int64, error) {
	filter := repository.PublicationFilter{
		Year:          req.Year,
		Type:          req.Type,
		Search:        req.Search,
		PublishedOnly: !listAll,
		Offset:        (req.GetPage() - 1) * req.GetLimit(),
		Limit:         req.GetLimit(),
	}

	items, total, err := s.repo.Publication.List(ctx, filter)
	if err != nil {
		s.logger.Error("list publications failed", zap.Error(err))
		return nil, 0, err
	}
	return items, total, nil
}

func (s *publicationService) GetByID(ctx context.Context, id string) (*model.Publication, error) {
	pub, err := s.repo.Publication.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPublicationNotFound
		}
		s.logger.Error("get publication failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return pub, nil
}

func (s *publicationService) Create(ctx context.Context, req *dto.CreatePublicationRequest, pdfURL, imageURL string) (*model.Publication, error) {
	authors := req.Authors.Values()
	if len(authors) == 0 {
		return nil, ErrNoAuthors
	}

	pub := &model.Publication{
		Title:       req.Title,
		Authors:     authors,
		Venue:       req.Venue,
		Year:        req.Year,
		Type:        req.Type,
		DOI:         req.DOI,
		URL:         req.URL,
		Abstract:    req.Abstract,
		Keywords:    req.Keywords.Values(),
		IsPublished: true,
		PDFFile:     pdfURL,
		Image:       imageURL,
	}
	if pub.Keywords == nil {
		pub.Keywords = model.StringArray{}
	}
	if req.PublishedDate != "" {
		t, ok := dto.ParseDate(req.PublishedDate)
		if !ok {
			return nil, ErrBadDate
		}
		pub.PublishedDate = &t
	}
	if req.IsPublished != nil {
		pub.IsPublished = req.IsPublished.Bool()
	}

	if err := s.repo.Publication.Create(ctx, pub); err != nil {
		s.logger.Error("create publication failed", zap.Error(err))
		return nil, err
	}
	return pub, nil
}

func (s *publicationService) Update(ctx context.Context, id string, req *dto.UpdatePublicationRequest, pdfURL, imageURL string) (*model.Publication, error) {
	pub, err := s.repo.Publication.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPublicationNotFound
		}
		s.logger.Error("get publication failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Title != nil {
		pub.Title = *req.Title
	}
	if req.Authors != nil {
		authors := req.Authors.Values()
		if len(authors) == 0 {
			return nil, ErrNoAuthors
		}
		pub.Authors = authors
	}
	if req.Venue != nil {
		pub.Venue = *req.Venue
	}
	if req.Year != nil {
		pub.Year = *req.Year
	}
	if req.Type != nil {
		pub.Type = *req.Type
	}
	if req.DOI != nil {
		pub.DOI = *req.DOI
	}
	if req.URL != nil {
		pub.URL = *req.URL
	}
	if req.Abstract != nil {
		pub.Abstract = *req.Abstract
	}
	if req.Keywords != nil {
		pub.Keywords = req.Keywords.Values()
	}
	if req.Citations != nil {
		pub.Citations = *req.Citations
	}
	if req.PublishedDate != nil {
		t, ok := dto.ParseDate(*req.PublishedDate)
		if !ok {
			return nil, ErrBadDate
		}
		pub.PublishedDate = &t
	}
	if req.IsPublished != nil {
		pub.IsPublished = req.IsPublished.Bool()
	}
	if pdfURL != "" {
		pub.PDFFile = pdfURL
	}
	if imageURL != "" {
		pub.Image = imageURL
	}

	if err := s.repo.Publication.Update(ctx, pub); err != nil {
		s.logger.Error("update publication failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return pub, nil
}

func (s *publicationService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Publication.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPublicationNotFound
		}
		s.logger.Error("get publication failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Publication.Delete(ctx, id); err != nil {
		s.logger.Error("delete publication failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *publicationService) Stats(ctx context.Context) (*dto.PublicationStats, error) {
	stats, err := s.repo.Publication.Stats(ctx)
	if err != nil {
		s.logger.Error("publication stats failed", zap.Error(err))
		return nil, err
	}

	resp := &dto.PublicationStats{
		Summary: dto.PublicationSummary{
			Total:          stats.Total,
			TotalCitations: stats.TotalCitations,
		},
		ByYear: make([]dto.YearCount, 0, len(stats.ByYear)),
		ByType: make([]dto.TypeCount, 0, len(stats.ByType)),
	}
	for _, y := range stats.ByYear {
		resp.ByYear = append(resp.ByYear, dto.YearCount{Year: y.Year, Count: y.Count})
	}
	for _, t := range stats.ByType {
		resp.ByType = append(resp.ByType, dto.TypeCount{Type: t.Type, Count: t.Count})
	}
	return resp, nil
}
