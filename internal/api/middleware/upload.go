package middleware

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KhanhKH069/icnlab-website-fixed/config"
	"github.com/KhanhKH069/icnlab-website-fixed/pkg/response"
)

// FileField describes one accepted multipart file field.
type FileField struct {
	Name  string
	MIMEs []string
}

var imageMIMEs = []string{"image/jpeg", "image/png", "image/gif"}

// ImageField accepts jpeg, png and gif.
func ImageField(name string) FileField {
	return FileField{Name: name, MIMEs: imageMIMEs}
}

// PDFField accepts pdf only.
func PDFField(name string) FileField {
	return FileField{Name: name, MIMEs: []string{"application/pdf"}}
}

// extByMIME maps the sniffed content type to the stored extension. The
// client-supplied filename is never trusted.
var extByMIME = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"application/pdf": ".pdf",
}

// SaveUploads extracts the given file fields from a multipart request, saves
// them under <dir>/<kind>/ with generated names, and exposes the public URLs
// to the handler via UploadedFile. Non-multipart requests pass through
// untouched; an oversized or mistyped file aborts with a 400 before the
// handler runs.
func SaveUploads(cfg *config.UploadConfig, kind string, fields ...FileField) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			c.Next()
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			response.BadRequest(c, "Invalid multipart form")
			c.Abort()
			return
		}

		for _, field := range fields {
			files := form.File[field.Name]
			if len(files) == 0 {
				continue
			}
			header := files[0]

			if header.Size > cfg.MaxBytes {
				response.BadRequest(c, fmt.Sprintf("File too large (max %dMB)", cfg.MaxBytes>>20))
				c.Abort()
				return
			}

			url, err := saveFile(cfg, kind, header, field.MIMEs)
			if err != nil {
				if os.IsPermission(err) || os.IsNotExist(err) {
					response.InternalError(c)
				} else {
					response.BadRequest(c, err.Error())
				}
				c.Abort()
				return
			}

			c.Set("file:"+field.Name, url)
		}

		c.Next()
	}
}

// UploadedFile returns the public URL stored by SaveUploads for a field, or
// "" when the request carried no file for it.
func UploadedFile(c *gin.Context, field string) string {
	return c.GetString("file:" + field)
}

func saveFile(cfg *config.UploadConfig, kind string, header *multipart.FileHeader, allowed []string) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Sniff the real content type; the declared header is ignored.
	buf := make([]byte, 512)
	n, err := src.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	contentType := http.DetectContentType(buf[:n])

	mimeOK := false
	for _, m := range allowed {
		if contentType == m || strings.HasPrefix(contentType, m+";") {
			mimeOK = true
			break
		}
	}
	if !mimeOK {
		return "", fmt.Errorf("unsupported file type %q", contentType)
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	dir := filepath.Join(cfg.Dir, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + extByMIME[contentType]
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + kind + "/" + name, nil
}
