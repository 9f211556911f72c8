package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/KhanhKH069/icnlab-website-fixed/internal/dto"
)

func newTestNewsService() NewsService {
	return NewNewsService(newTestRepo(), zap.NewNop())
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello-world"},
		{"ICN Lab wins Best Paper Award 2024", "icn-lab-wins-best-paper-award-2024"},
		{"  spaces  everywhere  ", "spaces-everywhere"},
		{"---already---dashed---", "already-dashed"},
		{"UPPER case", "upper-case"},
		{"!!!", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMakeExcerpt(t *testing.T) {
	short := "short content"
	if got := MakeExcerpt(short); got != short+"..." {
		t.Errorf("MakeExcerpt(short) = %q", got)
	}

	long := strings.Repeat("a", 300)
	got := MakeExcerpt(long)
	if len(got) != 203 {
		t.Errorf("MakeExcerpt(long) length = %d, want 203", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("MakeExcerpt(long) missing ellipsis: %q", got)
	}
}

func TestCreateNewsDefaults(t *testing.T) {
	svc := newTestNewsService()
	ctx := context.Background()

	news, err := svc.Create(ctx, &dto.CreateNewsRequest{
		Title:    "Lab Opening Ceremony",
		Content:  "The lab opened its doors today.",
		Category: "event",
	}, "user-1", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if news.Slug != "lab-opening-ceremony" {
		t.Errorf("slug = %q", news.Slug)
	}
	if news.Excerpt != "The lab opened its doors today...." {
		t.Errorf("excerpt = %q", news.Excerpt)
	}
	if !news.IsPublished {
		t.Error("expected new post to default to published")
	}
	if news.PublishedDate.IsZero() {
		t.Error("expected published date to default to now")
	}
	if news.Tags == nil {
		t.Error("expected tags to default to an empty list")
	}
	if news.AuthorID != "user-1" {
		t.Errorf("author = %q", news.AuthorID)
	}
}

func TestCreateNewsDuplicateTitle(t *testing.T) {
	svc := newTestNewsService()
	ctx := context.Background()

	req := &dto.CreateNewsRequest{Title: "Same Title", Content: "first", Category: "event"}
	if _, err := svc.Create(ctx, req, "user-1", ""); err != nil {
		t.Fatalf("first create: %v", err)
	}

	req2 := &dto.CreateNewsRequest{Title: "Same Title", Content: "second", Category: "event"}
	if _, err := svc.Create(ctx, req2, "user-1", ""); !errors.Is(err, ErrSlugTaken) {
		t.Errorf("second create err = %v, want ErrSlugTaken", err)
	}
}

func TestCreateNewsBadDate(t *testing.T) {
	svc := newTestNewsService()

	_, err := svc.Create(context.Background(), &dto.CreateNewsRequest{
		Title:         "Dated Post",
		Content:       "body",
		Category:      "event",
		PublishedDate: "15/06/2024",
	}, "user-1", "")
	if !errors.Is(err, ErrBadDate) {
		t.Errorf("err = %v, want ErrBadDate", err)
	}
}

func TestGetNewsIncrementsViews(t *testing.T) {
	svc := newTestNewsService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateNewsRequest{
		Title: "Popular Post", Content: "body", Category: "announcement",
	}, "user-1", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	first, err := svc.GetByID(ctx, created.NewsID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if first.Views != 1 {
		t.Errorf("views after first read = %d, want 1", first.Views)
	}

	second, err := svc.GetByID(ctx, created.NewsID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if second.Views != 2 {
		t.Errorf("views after second read = %d, want 2", second.Views)
	}
}

func TestUpdateNewsMergesFields(t *testing.T) {
	svc := newTestNewsService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateNewsRequest{
		Title: "Original Title", Content: "original content", Category: "event",
	}, "user-1", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newTitle := "Renamed Title"
	updated, err := svc.Update(ctx, created.NewsID, &dto.UpdateNewsRequest{Title: &newTitle}, "")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Title != newTitle {
		t.Errorf("title = %q", updated.Title)
	}
	if updated.Slug != "renamed-title" {
		t.Errorf("slug not regenerated: %q", updated.Slug)
	}
	if updated.Content != "original content" {
		t.Errorf("content changed unexpectedly: %q", updated.Content)
	}
}

func TestUpdateNewsNotFound(t *testing.T) {
	svc := newTestNewsService()

	title := "anything"
	_, err := svc.Update(context.Background(), "missing", &dto.UpdateNewsRequest{Title: &title}, "")
	if !errors.Is(err, ErrNewsNotFound) {
		t.Errorf("err = %v, want ErrNewsNotFound", err)
	}
}

func TestDeleteNewsNotFound(t *testing.T) {
	svc := newTestNewsService()

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrNewsNotFound) {
		t.Errorf("err = %v, want ErrNewsNotFound", err)
	}
}

func TestListNewsVisibility(t *testing.T) {
	svc := newTestNewsService()
	ctx := context.Background()

	hidden := dto.FlexBool("false")
	if _, err := svc.Create(ctx, &dto.CreateNewsRequest{
		Title: "Draft", Content: "draft body", Category: "event", IsPublished: &hidden,
	}, "user-1", ""); err != nil {
		t.Fatalf("create draft: %v", err)
	}
	if _, err := svc.Create(ctx, &dto.CreateNewsRequest{
		Title: "Public", Content: "public body", Category: "event",
	}, "user-1", ""); err != nil {
		t.Fatalf("create public: %v", err)
	}

	anon, total, err := svc.List(ctx, &dto.NewsListRequest{}, false)
	if err != nil {
		t.Fatalf("anonymous list: %v", err)
	}
	if total != 1 || len(anon) != 1 || anon[0].Title != "Public" {
		t.Errorf("anonymous list = %d items (total %d)", len(anon), total)
	}

	all, total, err := svc.List(ctx, &dto.NewsListRequest{}, true)
	if err != nil {
		t.Fatalf("authenticated list: %v", err)
	}
	if total != 2 || len(all) != 2 {
		t.Errorf("authenticated list = %d items (total %d), want 2", len(all), total)
	}
}
