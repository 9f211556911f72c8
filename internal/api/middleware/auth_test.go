package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KhanhKH069/icnlab-website-fixed/config"
	"github.com/KhanhKH069/icnlab-website-fixed/internal/model"
	"github.com/KhanhKH069/icnlab-website-fixed/pkg/jwt"
)

type stubUserRepo struct {
	users map[string]*model.User
}

func (r *stubUserRepo) Create(_ context.Context, _ *model.User) error { return nil }
func (r *stubUserRepo) Update(_ context.Context, _ *model.User) error { return nil }

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) GetByEmail(_ context.Context, _ string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func newAuthTestRouter(users *stubUserRepo, extra ...gin.HandlerFunc) (*gin.Engine, *jwt.Manager) {
	gin.SetMode(gin.TestMode)
	jwtMgr := jwt.NewManager(&config.AuthConfig{JWTSecret: "test-secret-at-least-16-chars"})

	r := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuth(jwtMgr, users, nil)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"userId": c.GetString(CtxUserID)}})
	})
	r.GET("/protected", handlers...)
	return r, jwtMgr
}

func do(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingToken(t *testing.T) {
	r, _ := newAuthTestRouter(&stubUserRepo{})

	w := do(r, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}

	var body struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success {
		t.Error("expected success=false")
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	r, _ := newAuthTestRouter(&stubUserRepo{})

	if w := do(r, "garbage"); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	users := &stubUserRepo{users: map[string]*model.User{
		"user-1": {UserID: "user-1", Role: model.RoleEditor, IsActive: true},
	}}
	r, jwtMgr := newAuthTestRouter(users)

	token, err := jwtMgr.GenerateToken("user-1", model.RoleEditor)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if w := do(r, token); w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestJWTAuthDeletedUser(t *testing.T) {
	// Valid signature, but the account is gone: still a 401.
	r, jwtMgr := newAuthTestRouter(&stubUserRepo{})

	token, err := jwtMgr.GenerateToken("user-1", model.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if w := do(r, token); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthDeactivatedUser(t *testing.T) {
	users := &stubUserRepo{users: map[string]*model.User{
		"user-1": {UserID: "user-1", Role: model.RoleEditor, IsActive: false},
	}}
	r, jwtMgr := newAuthTestRouter(users)

	token, err := jwtMgr.GenerateToken("user-1", model.RoleEditor)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if w := do(r, token); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRequireEditorForbidsViewer(t *testing.T) {
	users := &stubUserRepo{users: map[string]*model.User{
		"viewer-1": {UserID: "viewer-1", Role: model.RoleViewer, IsActive: true},
		"admin-1":  {UserID: "admin-1", Role: model.RoleAdmin, IsActive: true},
	}}
	r, jwtMgr := newAuthTestRouter(users, RequireEditor())

	viewerToken, _ := jwtMgr.GenerateToken("viewer-1", model.RoleViewer)
	if w := do(r, viewerToken); w.Code != http.StatusForbidden {
		t.Errorf("viewer status = %d, want 403", w.Code)
	}

	adminToken, _ := jwtMgr.GenerateToken("admin-1", model.RoleAdmin)
	if w := do(r, adminToken); w.Code != http.StatusOK {
		t.Errorf("admin status = %d, want 200", w.Code)
	}
}

func TestRequireAdminForbidsEditor(t *testing.T) {
	users := &stubUserRepo{users: map[string]*model.User{
		"editor-1": {UserID: "editor-1", Role: model.RoleEditor, IsActive: true},
	}}
	r, jwtMgr := newAuthTestRouter(users, RequireAdmin())

	token, _ := jwtMgr.GenerateToken("editor-1", model.RoleEditor)
	if w := do(r, token); w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestOptionalJWTAuthAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtMgr := jwt.NewManager(&config.AuthConfig{JWTSecret: "test-secret-at-least-16-chars"})

	r := gin.New()
	r.GET("/public", OptionalJWTAuth(jwtMgr, &stubUserRepo{}), func(c *gin.Context) {
		_, authed := c.Get(CtxUserID)
		c.JSON(http.StatusOK, gin.H{"authenticated": authed})
	})

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Authenticated bool `json:"authenticated"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Authenticated {
		t.Error("anonymous request should not resolve a user")
	}

	// An invalid token degrades to anonymous rather than failing.
	req = httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("invalid token status = %d, want 200", w.Code)
	}
}
