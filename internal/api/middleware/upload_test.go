package middleware

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/KhanhKH069/icnlab-website-fixed/config"
)

// Minimal valid PNG header so content sniffing recognizes the type.
var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

var pdfBytes = []byte("%PDF-1.4\n%fake test document\n")

func newUploadTestRouter(t *testing.T, cfg *config.UploadConfig, fields ...FileField) (*gin.Engine, *string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var gotURL string
	r := gin.New()
	r.POST("/upload", SaveUploads(cfg, "news", fields...), func(c *gin.Context) {
		gotURL = UploadedFile(c, fields[0].Name)
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r, &gotURL
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()
	return body, mw.FormDataContentType()
}

func TestSaveUploadsImage(t *testing.T) {
	cfg := &config.UploadConfig{Dir: t.TempDir(), MaxBytes: 5 << 20}
	r, gotURL := newUploadTestRouter(t, cfg, ImageField("image"))

	body, contentType := multipartBody(t, "image", "photo.png", pngBytes)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !strings.HasPrefix(*gotURL, "/uploads/news/") || !strings.HasSuffix(*gotURL, ".png") {
		t.Fatalf("url = %q", *gotURL)
	}

	// The file must exist on disk under the kind directory.
	name := filepath.Base(*gotURL)
	if _, err := os.Stat(filepath.Join(cfg.Dir, "news", name)); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}

func TestSaveUploadsRejectsWrongType(t *testing.T) {
	cfg := &config.UploadConfig{Dir: t.TempDir(), MaxBytes: 5 << 20}
	r, _ := newUploadTestRouter(t, cfg, ImageField("image"))

	// A PDF masquerading as a PNG filename still fails: type comes from the
	// content, not the name.
	body, contentType := multipartBody(t, "image", "sneaky.png", pdfBytes)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSaveUploadsRejectsOversize(t *testing.T) {
	cfg := &config.UploadConfig{Dir: t.TempDir(), MaxBytes: 16}
	r, _ := newUploadTestRouter(t, cfg, ImageField("image"))

	big := append(append([]byte{}, pngBytes...), bytes.Repeat([]byte{0}, 64)...)
	body, contentType := multipartBody(t, "image", "big.png", big)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSaveUploadsPDFField(t *testing.T) {
	cfg := &config.UploadConfig{Dir: t.TempDir(), MaxBytes: 5 << 20}
	r, gotURL := newUploadTestRouter(t, cfg, PDFField("pdfFile"))

	body, contentType := multipartBody(t, "pdfFile", "paper.pdf", pdfBytes)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !strings.HasSuffix(*gotURL, ".pdf") {
		t.Errorf("url = %q", *gotURL)
	}
}

func TestSaveUploadsIgnoresNonMultipart(t *testing.T) {
	cfg := &config.UploadConfig{Dir: t.TempDir(), MaxBytes: 5 << 20}
	r, gotURL := newUploadTestRouter(t, cfg, ImageField("image"))

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(`{"title":"json body"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if *gotURL != "" {
		t.Errorf("url = %q, want empty", *gotURL)
	}
}

func TestSaveUploadsMissingFileIsFine(t *testing.T) {
	cfg := &config.UploadConfig{Dir: t.TempDir(), MaxBytes: 5 << 20}
	r, gotURL := newUploadTestRouter(t, cfg, ImageField("image"))

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	mw.WriteField("title", "text only")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if *gotURL != "" {
		t.Errorf("url = %q, want empty", *gotURL)
	}
}
