package services

import (
	"sync"
	"time"

	"github.com/bipuldey19/hungrypanda-handler/entity"
)

// ItemLister is what the cache sits in front of; satisfied by
// repository.CatalogRepository.
type ItemLister interface {
	ListItems() ([]entity.MenuItem, error)
}

// CatalogService wraps catalog reads in a short-TTL snapshot cache.
// Any successful mutation clears the whole snapshot; staleness is
// bounded by the TTL or the next mutation, whichever comes first.
type CatalogService struct {
	repo ItemLister
	ttl  time.Duration
	now  func() time.Time

	mu        sync.Mutex
	snapshot  []entity.MenuItem
	fetchedAt time.Time
	valid     bool
}

func NewCatalogService(repo ItemLister, ttl time.Duration) *CatalogService {
	return &CatalogService{repo: repo, ttl: ttl, now: time.Now}
}

// ListItems returns the held snapshot while it is fresh, otherwise
// re-queries. A failed query yields an empty sequence plus the error;
// the stale snapshot is not served in its place.
func (s *CatalogService) ListItems() ([]entity.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.valid && s.now().Sub(s.fetchedAt) < s.ttl {
		return s.snapshot, nil
	}

	items, err := s.repo.ListItems()
	if err != nil {
		s.valid = false
		return []entity.MenuItem{}, err
	}

	s.snapshot = items
	s.fetchedAt = s.now()
	s.valid = true
	return items, nil
}

// Invalidate drops the snapshot so the next read hits the store.
func (s *CatalogService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = nil
	s.valid = false
}
