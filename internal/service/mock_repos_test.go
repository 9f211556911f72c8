package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/KhanhKH069/icnlab-website-fixed/internal/model"
	"github.com/KhanhKH069/icnlab-website-fixed/internal/repository"
)

// In-memory repositories backing the service tests. Each store copies records
// on the way in and out, so a service mutating a returned pointer without
// calling Update does not silently change the stored row.

type mockUserRepo struct {
	seq   int
	users map[string]model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]model.User)}
}

func (r *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.UserID == "" {
		r.seq++
		user.UserID = fmt.Sprintf("user-%d", r.seq)
	}
	r.users[user.UserID] = *user
	return nil
}

func (r *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := r.users[user.UserID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.users[user.UserID] = *user
	return nil
}

type mockNewsRepo struct {
	seq   int
	items []model.News
}

func newMockNewsRepo() *mockNewsRepo { return &mockNewsRepo{} }

func (r *mockNewsRepo) Create(_ context.Context, news *model.News) error {
	for _, n := range r.items {
		if n.Slug == news.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	if news.NewsID == "" {
		r.seq++
		news.NewsID = fmt.Sprintf("news-%d", r.seq)
	}
	r.items = append(r.items, *news)
	return nil
}

func (r *mockNewsRepo) GetByID(_ context.Context, id string) (*model.News, error) {
	for _, n := range r.items {
		if n.NewsID == id {
			n := n
			return &n, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockNewsRepo) List(_ context.Context, filter repository.NewsFilter) ([]model.News, int64, error) {
	var matched []model.News
	for _, n := range r.items {
		if filter.PublishedOnly && !n.IsPublished {
			continue
		}
		if filter.Category != "" && n.Category != filter.Category {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(n.Title), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(n.Content), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, n)
	}

	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		return nil, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[filter.Offset:end], total, nil
}

func (r *mockNewsRepo) Update(_ context.Context, news *model.News) error {
	for i, n := range r.items {
		if n.NewsID == news.NewsID {
			for j, other := range r.items {
				if j != i && other.Slug == news.Slug {
					return gorm.ErrDuplicatedKey
				}
			}
			r.items[i] = *news
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *mockNewsRepo) Delete(_ context.Context, id string) error {
	for i, n := range r.items {
		if n.NewsID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *mockNewsRepo) IncrementViews(_ context.Context, id string) error {
	for i, n := range r.items {
		if n.NewsID == id {
			r.items[i].Views++
			return nil
		}
	}
	return nil
}

type mockPublicationRepo struct {
	seq   int
	items []model.Publication
}

func newMockPublicationRepo() *mockPublicationRepo { return &mockPublicationRepo{} }

func (r *mockPublicationRepo) Create(_ context.Context, pub *model.Publication) error {
	if pub.PublicationID == "" {
		r.seq++
		pub.PublicationID = fmt.Sprintf("pub-%d", r.seq)
	}
	r.items = append(r.items, *pub)
	return nil
}

func (r *mockPublicationRepo) GetByID(_ context.Context, id string) (*model.Publication, error) {
	for _, p := range r.items {
		if p.PublicationID == id {
			p := p
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockPublicationRepo) List(_ context.Context, filter repository.PublicationFilter) ([]model.Publication, int64, error) {
	var matched []model.Publication
	for _, p := range r.items {
		if filter.PublishedOnly && !p.IsPublished {
			continue
		}
		if filter.Year != 0 && p.Year != filter.Year {
			continue
		}
		if filter.Type != "" && p.Type != filter.Type {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(p.Title), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, p)
	}

	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		return nil, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[filter.Offset:end], total, nil
}

func (r *mockPublicationRepo) ListAll(_ context.Context) ([]model.Publication, error) {
	out := make([]model.Publication, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *mockPublicationRepo) Update(_ context.Context, pub *model.Publication) error {
	for i, p := range r.items {
		if p.PublicationID == pub.PublicationID {
			r.items[i] = *pub
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *mockPublicationRepo) Delete(_ context.Context, id string) error {
	for i, p := range r.items {
		if p.PublicationID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *mockPublicationRepo) Stats(_ context.Context) (*repository.PublicationStats, error) {
	stats := &repository.PublicationStats{}
	byYear := make(map[int]int64)
	byType := make(map[string]int64)
	for _, p := range r.items {
		if !p.IsPublished {
			continue
		}
		stats.Total++
		stats.TotalCitations += int64(p.Citations)
		byYear[p.Year]++
		byType[p.Type]++
	}
	for year, count := range byYear {
		stats.ByYear = append(stats.ByYear, repository.YearCount{Year: year, Count: count})
	}
	for typ, count := range byType {
		stats.ByType = append(stats.ByType, repository.TypeCount{Type: typ, Count: count})
	}
	return stats, nil
}

type mockProjectRepo struct {
	seq          int
	items        []model.Project
	members      map[string][]string
	publications map[string][]string
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{
		members:      make(map[string][]string),
		publications: make(map[string][]string),
	}
}

func (r *mockProjectRepo) Create(_ context.Context, project *model.Project, memberIDs, publicationIDs []string) error {
	if project.ProjectID == "" {
		r.seq++
		project.ProjectID = fmt.Sprintf("project-%d", r.seq)
	}
	r.items = append(r.items, *project)
	r.members[project.ProjectID] = memberIDs
	r.publications[project.ProjectID] = publicationIDs
	return nil
}

func (r *mockProjectRepo) GetByID(_ context.Context, id string) (*model.Project, error) {
	for _, p := range r.items {
		if p.ProjectID == id {
			p := p
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockProjectRepo) List(_ context.Context, filter repository.ProjectFilter) ([]model.Project, error) {
	var matched []model.Project
	for _, p := range r.items {
		if filter.PublishedOnly && !p.IsPublished {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		matched = append(matched, p)
	}
	return matched, nil
}

func (r *mockProjectRepo) Update(_ context.Context, project *model.Project) error {
	for i, p := range r.items {
		if p.ProjectID == project.ProjectID {
			r.items[i] = *project
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *mockProjectRepo) ReplaceMembers(_ context.Context, projectID string, memberIDs []string) error {
	r.members[projectID] = memberIDs
	return nil
}

func (r *mockProjectRepo) ReplacePublications(_ context.Context, projectID string, publicationIDs []string) error {
	r.publications[projectID] = publicationIDs
	return nil
}

func (r *mockProjectRepo) Delete(_ context.Context, id string) error {
	for i, p := range r.items {
		if p.ProjectID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			break
		}
	}
	delete(r.members, id)
	delete(r.publications, id)
	return nil
}

type mockMemberRepo struct {
	seq   int
	items []model.Member
}

func newMockMemberRepo() *mockMemberRepo { return &mockMemberRepo{} }

func (r *mockMemberRepo) Create(_ context.Context, member *model.Member) error {
	for _, m := range r.items {
		if m.Email == member.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if member.MemberID == "" {
		r.seq++
		member.MemberID = fmt.Sprintf("member-%d", r.seq)
	}
	r.items = append(r.items, *member)
	return nil
}

func (r *mockMemberRepo) GetByID(_ context.Context, id string) (*model.Member, error) {
	for _, m := range r.items {
		if m.MemberID == id {
			m := m
			return &m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockMemberRepo) GetByEmail(_ context.Context, email string) (*model.Member, error) {
	for _, m := range r.items {
		if m.Email == email {
			m := m
			return &m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockMemberRepo) List(_ context.Context, filter repository.MemberFilter) ([]model.Member, error) {
	var matched []model.Member
	for _, m := range r.items {
		if filter.ActiveOnly && !m.IsActive {
			continue
		}
		if filter.Position != "" && m.Position != filter.Position {
			continue
		}
		if filter.IsAlumni != nil && m.IsAlumni != *filter.IsAlumni {
			continue
		}
		matched = append(matched, m)
	}
	return matched, nil
}

func (r *mockMemberRepo) Update(_ context.Context, member *model.Member) error {
	for i, m := range r.items {
		if m.MemberID == member.MemberID {
			r.items[i] = *member
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *mockMemberRepo) Delete(_ context.Context, id string) error {
	for i, m := range r.items {
		if m.MemberID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type mockMaintenanceRepo struct {
	projectMembers      []repository.OrphanedRef
	projectPublications []repository.OrphanedRef
	newsAuthors         []repository.OrphanedRef
}

func (r *mockMaintenanceRepo) OrphanedProjectMembers(_ context.Context) ([]repository.OrphanedRef, error) {
	return r.projectMembers, nil
}

func (r *mockMaintenanceRepo) OrphanedProjectPublications(_ context.Context) ([]repository.OrphanedRef, error) {
	return r.projectPublications, nil
}

func (r *mockMaintenanceRepo) OrphanedNewsAuthors(_ context.Context) ([]repository.OrphanedRef, error) {
	return r.newsAuthors, nil
}

func newTestRepo() *repository.Repository {
	return &repository.Repository{
		User:        newMockUserRepo(),
		News:        newMockNewsRepo(),
		Publication: newMockPublicationRepo(),
		Project:     newMockProjectRepo(),
		Member:      newMockMemberRepo(),
		Maintenance: &mockMaintenanceRepo{},
	}
}
