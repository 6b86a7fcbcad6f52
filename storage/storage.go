package storage

import (
	"path/filepath"
	"strings"

	"github.com/bipuldey19/hungrypanda-handler/configs"

	"github.com/google/uuid"
)

// Uploader writes a file into the object store and returns its public
// URL. A failed call returns an error and nothing else; callers decide
// whether that aborts the whole operation or just skips one image.
type Uploader interface {
	Upload(data []byte, name, contentType string) (string, error)
}

func FromConfig(cfg *configs.Config) Uploader {
	if cfg.StorageBackend == "supabase" {
		return NewSupabaseStorage(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseBucket)
	}
	return NewLocalStorage(cfg.UploadDir, cfg.PublicBaseURL)
}

// objectPath builds "public/<uuid>.<ext>"; uniqueness is
// probabilistic, collisions are not checked.
func objectPath(name string) string {
	path := "public/" + uuid.New().String()
	if ext := strings.TrimPrefix(filepath.Ext(name), "."); ext != "" {
		path += "." + ext
	}
	return path
}
