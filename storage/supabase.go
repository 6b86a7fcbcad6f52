package storage

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// SupabaseStorage uploads through the storage REST API of a Supabase
// project and resolves public bucket URLs.
type SupabaseStorage struct {
	BaseURL string
	Key     string
	Bucket  string
	Client  *http.Client
}

func NewSupabaseStorage(baseURL, key, bucket string) *SupabaseStorage {
	return &SupabaseStorage{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Key:     key,
		Bucket:  bucket,
		Client:  &http.Client{},
	}
}

func (s *SupabaseStorage) Upload(data []byte, name, contentType string) (string, error) {
	path := objectPath(name)
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.BaseURL, s.Bucket, path)

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.Key)
	req.Header.Set("apikey", s.Key)
	req.Header.Set("Content-Type", contentType)

	res, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage upload failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("storage returned %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	return s.publicURL(path), nil
}

func (s *SupabaseStorage) publicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.BaseURL, s.Bucket, path)
}
