package entity

import (
	"encoding/json"
	"time"
)

type KBMetadata struct {
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
	Content  string `json:"content,omitempty"`
}

// KBEntry is a knowledge base article, stored as a catalog row under
// the "knowledge" type tag (or in its own table, depending on the
// deployment).
type KBEntry struct {
	ID        uint       `json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	Meta      KBMetadata `json:"metadata"`
}

func (r *CatalogRow) KBEntry() KBEntry {
	entry := KBEntry{ID: r.ID, CreatedAt: r.CreatedAt}
	_ = json.Unmarshal(r.Metadata, &entry.Meta)
	return entry
}
