package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/KhanhKH069/icnlab-website-fixed/internal/dto"
	"github.com/KhanhKH069/icnlab-website-fixed/internal/model"
	"github.com/KhanhKH069/icnlab-website-fixed/internal/repository"
)

var (
	ErrMemberNotFound   = errors.New("member not found")
	ErrMemberEmailTaken = errors.New("member with this email already exists")
)

// MemberService is the member business interface. listAll is true for
// authenticated callers, who also see inactive members.
type MemberService interface {
	List(ctx context.Context, req *dto.MemberListRequest, listAll bool) ([]model.Member, error)
	GetByID(ctx context.Context, id string) (*model.Member, error)
	Create(ctx context.Context, req *dto.CreateMemberRequest, photoURL string) (*model.Member, error)
	Update(ctx context.Context, id string, req *dto.UpdateMemberRequest, photoURL string) (*model.Member, error)
	Delete(ctx context.Context, id string) error
}

type memberService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMemberService creates the MemberService.
func NewMemberService(repo *repository.Repository, logger *zap.Logger) MemberService {
	return &memberService{repo: repo, logger: logger}
}

func (s *memberService) List(ctx context.Context, req *dto.MemberListRequest, listAll bool) ([]model.Member, error) {
	filter := repository.MemberFilter{
		Position:   req.Position,
		ActiveOnly: !listAll,
	}
	if req.IsAlumni != nil {
		isAlumni := req.IsAlumni.Bool()
		filter.IsAlumni = &isAlumni
	}

	members, err := s.repo.Member.List(ctx, filter)
	if err != nil {
		s.logger.Error("list members failed", zap.Error(err))
		return nil, err
	}
	return members, nil
}

func (s *memberService) GetByID(ctx context.Context, id string) (*model.Member, error) {
	member, err := s.repo.Member.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		s.logger.Error("get member failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (s *memberService) Create(ctx context.Context, req *dto.CreateMemberRequest, photoURL string) (*model.Member, error) {
	// Pre-check; the unique index on members.email is the backstop.
	if _, err := s.repo.Member.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrMemberEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("lookup member failed", zap.Error(err))
		return nil, err
	}

	member := &model.Member{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Position:          req.Position,
		AcademicTitle:     req.AcademicTitle,
		Affiliation:       req.Affiliation,
		Bio:               req.Bio,
		Photo:             photoURL,
		ResearchInterests: req.ResearchInterests.Values(),
		Education:         datatypes.NewJSONSlice(req.Education),
		JoinDate:          time.Now(),
		IsActive:          true,
		IsAlumni:          false,
		Order:             req.Order,
	}
	if member.ResearchInterests == nil {
		member.ResearchInterests = model.StringArray{}
	}
	if req.Education == nil {
		member.Education = datatypes.NewJSONSlice([]model.Education{})
	}
	if req.SocialLinks != nil {
		member.SocialLinks = datatypes.NewJSONType(*req.SocialLinks)
	}
	if req.JoinDate != "" {
		t, ok := dto.ParseDate(req.JoinDate)
		if !ok {
			return nil, ErrBadDate
		}
		member.JoinDate = t
	}
	if req.IsActive != nil {
		member.IsActive = req.IsActive.Bool()
	}
	if req.IsAlumni != nil {
		member.IsAlumni = req.IsAlumni.Bool()
	}

	if err := s.repo.Member.Create(ctx, member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrMemberEmailTaken
		}
		s.logger.Error("create member failed", zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (s *memberService) Update(ctx context.Context, id string, req *dto.UpdateMemberRequest, photoURL string) (*model.Member, error) {
	member, err := s.repo.Member.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		s.logger.Error("get member failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// Re-validate uniqueness when the identifying field changes.
	if req.Email != nil && *req.Email != member.Email {
		if _, err := s.repo.Member.GetByEmail(ctx, *req.Email); err == nil {
			return nil, ErrMemberEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("lookup member failed", zap.Error(err))
			return nil, err
		}
		member.Email = *req.Email
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Position != nil {
		member.Position = *req.Position
	}
	if req.AcademicTitle != nil {
		member.AcademicTitle = *req.AcademicTitle
	}
	if req.Affiliation != nil {
		member.Affiliation = *req.Affiliation
	}
	if req.Bio != nil {
		member.Bio = *req.Bio
	}
	if req.ResearchInterests != nil {
		member.ResearchInterests = req.ResearchInterests.Values()
	}
	if req.Education != nil {
		member.Education = datatypes.NewJSONSlice(req.Education)
	}
	if req.SocialLinks != nil {
		member.SocialLinks = datatypes.NewJSONType(*req.SocialLinks)
	}
	if req.JoinDate != nil {
		t, ok := dto.ParseDate(*req.JoinDate)
		if !ok {
			return nil, ErrBadDate
		}
		member.JoinDate = t
	}
	if req.IsActive != nil {
		member.IsActive = req.IsActive.Bool()
	}
	if req.IsAlumni != nil {
		member.IsAlumni = req.IsAlumni.Bool()
	}
	if req.Order != nil {
		member.Order = *req.Order
	}
	if photoURL != "" {
		member.Photo = photoURL
	}

	if err := s.repo.Member.Update(ctx, member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrMemberEmailTaken
		}
		s.logger.Error("update member failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return member, nil
}

func (s *memberService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Member.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		s.logger.Error("get member failed", zap.String("id", id), zap.Error(err))
		return err
	}

	// No cascade: project join rows keep pointing at the deleted member until
	// the integrity check reports them.
	if err := s.repo.Member.Delete(ctx, id); err != nil {
		s.logger.Error("delete member failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
