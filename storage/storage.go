package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/clean-alert/api-go/config"
	"github.com/google/uuid"
)

// Storage keeps report photos. Reports reference photos by filename only, so
// the backend can be swapped without touching stored rows: local disk by
// default, Cloudflare R2 when configured.
type Storage interface {
	Save(ctx context.Context, filename string, r io.Reader) error
	Open(ctx context.Context, filename string) (io.ReadCloser, error)
	Delete(ctx context.Context, filename string) error
}

// New picks the backend from the environment.
func New() (Storage, error) {
	r2cfg := config.GetR2Config()
	if r2cfg.Enabled() {
		return NewR2(r2cfg), nil
	}
	return NewLocal(config.UploadsDir(), config.MaxUploadMB())
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// Filename builds a collision-resistant name for an uploaded photo. The
// original name is only consulted for its extension; everything else comes
// from the clock and a random id, so nothing user-controlled reaches the path.
func Filename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	if !imageExtensions[ext] {
		ext = ".jpg"
	}
	id := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), id, ext)
}

// validName rejects anything that could escape the uploads namespace.
func validName(filename string) bool {
	if filename == "" || filename == "." || filename == ".." {
		return false
	}
	return !strings.ContainsAny(filename, "/\\")
}
