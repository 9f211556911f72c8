package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/KhanhKH069/icnlab-website-fixed/internal/model"
)

// MemberFilter narrows a member listing. IsAlumni is tri-state: nil means no
// filter.
type MemberFilter struct {
	Position   string
	IsAlumni   *bool
	ActiveOnly bool
}

// MemberRepository is the member data-access interface.
type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	GetByID(ctx context.Context, id string) (*model.Member, error)
	GetByEmail(ctx context.Context, email string) (*model.Member, error)
	List(ctx context.Context, filter MemberFilter) ([]model.Member, error)
	Update(ctx context.Context, member *model.Member) error
	Delete(ctx context.Context, id string) error
}

type memberRepo struct {
	db *gorm.DB
}

// NewMemberRepo creates the GORM-backed MemberRepository.
func NewMemberRepo(db *gorm.DB) MemberRepository {
	return &memberRepo{db: db}
}

func (r *memberRepo) Create(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepo) GetByID(ctx context.Context, id string) (*model.Member, error) {
	var member model.Member
	err := r.db.WithContext(ctx).Where("member_id = ?", id).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepo) GetByEmail(ctx context.Context, email string) (*model.Member, error) {
	var member model.Member
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepo) List(ctx context.Context, filter MemberFilter) ([]model.Member, error) {
	db := r.db.WithContext(ctx).Model(&model.Member{})

	if filter.ActiveOnly {
		db = db.Where("is_active = ?", true)
	}
	if filter.Position != "" {
		db = db.Where("position = ?", filter.Position)
	}
	if filter.IsAlumni != nil {
		db = db.Where("is_alumni = ?", *filter.IsAlumni)
	}

	var members []model.Member
	err := db.Order("sort_order ASC, name ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepo) Update(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *memberRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("member_id = ?", id).Delete(&model.Member{}).Error
}
