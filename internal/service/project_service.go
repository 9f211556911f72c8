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

var ErrProjectNotFound = errors.New("project not found")

// ProjectService is the project business interface.
type ProjectService interface {
	List(ctx context.Context, req *dto.ProjectListRequest, listAll bool) ([]model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, req *dto.CreateProjectRequest, imageURL string) (*model.Project, error)
	Update(ctx context.Context, id string, req *dto.UpdateProjectRequest, imageURL string) (*model.Project, error)
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProjectService creates the ProjectService.
func NewProjectService(repo *repository.Repository, logger *zap.Logger) ProjectService {
	return &projectService{repo: repo, logger: logger}
}

func (s *projectService) List(ctx context.Context, req *dto.ProjectListRequest, listAll bool) ([]model.Project, error) {
	filter := repository.ProjectFilter{
		Status:        req.Status,
		Category:      req.Category,
		PublishedOnly: !listAll,
	}

	projects, err := s.repo.Project.List(ctx, filter)
	if err != nil {
		s.logger.Error("list projects failed", zap.Error(err))
		return nil, err
	}
	return projects, nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*model.Project, error) {
	project, err := s.repo.Project.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		s.logger.Error("get project failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return project, nil
}

func (s *projectService) Create(ctx context.Context, req *dto.CreateProjectRequest, imageURL string) (*model.Project, error) {
	startDate, ok := dto.ParseDate(req.StartDate)
	if !ok {
		return nil, ErrBadDate
	}

	project := &model.Project{
		Title:           req.Title,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		Category:        req.Category,
		Status:          req.Status,
		StartDate:       startDate,
		FundingAgency:   req.FundingAgency,
		Budget:          req.Budget,
		Technologies:    req.Technologies.Values(),
		GithubURL:       req.GithubURL,
		WebsiteURL:      req.WebsiteURL,
		IsPublished:     true,
		Image:           imageURL,
	}
	if project.Technologies == nil {
		project.Technologies = model.StringArray{}
	}
	if req.EndDate != "" {
		t, ok := dto.ParseDate(req.EndDate)
		if !ok {
			return nil, ErrBadDate
		}
		project.EndDate = &t
	}
	if req.IsPublished != nil {
		project.IsPublished = req.IsPublished.Bool()
	}

	err := s.repo.Project.Create(ctx, project, req.Members.Values(), req.Publications.Values())
	if err != nil {
		s.logger.Error("create project failed", zap.Error(err))
		return nil, err
	}

	return s.populate(ctx, project)
}

func (s *projectService) Update(ctx context.Context, id string, req *dto.UpdateProjectRequest, imageURL string) (*model.Project, error) {
	project, err := s.repo.Project.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		s.logger.Error("get project failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.FullDescription != nil {
		project.FullDescription = *req.FullDescription
	}
	if req.Category != nil {
		project.Category = *req.Category
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.StartDate != nil {
		t, ok := dto.ParseDate(*req.StartDate)
		if !ok {
			return nil, ErrBadDate
		}
		project.StartDate = t
	}
	if req.EndDate != nil {
		t, ok := dto.ParseDate(*req.EndDate)
		if !ok {
			return nil, ErrBadDate
		}
		project.EndDate = &t
	}
	if req.FundingAgency != nil {
		project.FundingAgency = *req.FundingAgency
	}
	if req.Budget != nil {
		project.Budget = *req.Budget
	}
	if req.Technologies != nil {
		project.Technologies = req.Technologies.Values()
	}
	if req.GithubURL != nil {
		project.GithubURL = *req.GithubURL
	}
	if req.WebsiteURL != nil {
		project.WebsiteURL = *req.WebsiteURL
	}
	if req.IsPublished != nil {
		project.IsPublished = req.IsPublished.Bool()
	}
	if imageURL != "" {
		project.Image = imageURL
	}

	if err := s.repo.Project.Update(ctx, project); err != nil {
		s.logger.Error("update project failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// Reference lists replace wholesale when supplied.
	if req.Members != nil {
		if err := s.repo.Project.ReplaceMembers(ctx, id, req.Members.Values()); err != nil {
			s.logger.Error("replace project members failed", zap.String("id", id), zap.Error(err))
			return nil, err
		}
	}
	if req.Publications != nil {
		if err := s.repo.Project.ReplacePublications(ctx, id, req.Publications.Values()); err != nil {
			s.logger.Error("replace project publications failed", zap.String("id", id), zap.Error(err))
			return nil, err
		}
	}

	return s.populate(ctx, project)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Project.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		s.logger.Error("get project failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Project.Delete(ctx, id); err != nil {
		s.logger.Error("delete project failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *projectService) populate(ctx context.Context, project *model.Project) (*model.Project, error) {
	full, err := s.repo.Project.GetByID(ctx, project.ProjectID)
	if err != nil {
		return project, nil
	}
	return full, nil
}
