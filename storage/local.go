package storage

import (
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage writes uploads under a directory served by the HTTP
// server at /uploads. Dev/self-hosted stand-in for the bucket.
type LocalStorage struct {
	Dir     string
	BaseURL string
}

func NewLocalStorage(dir, baseURL string) *LocalStorage {
	return &LocalStorage{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (l *LocalStorage) Upload(data []byte, name, contentType string) (string, error) {
	path := objectPath(name)
	full := filepath.Join(l.Dir, filepath.FromSlash(path))

	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, data, 0644); err != nil {
		return "", err
	}
	return l.BaseURL + "/uploads/" + path, nil
}
