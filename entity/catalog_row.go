package entity

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// CatalogRow is the denormalized shape the automation layer writes:
// every business field lives inside the metadata JSON column. This
// side only ever reads rows; writes go through the webhooks.
type CatalogRow struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Type      string         `gorm:"index" json:"type"`
	Metadata  datatypes.JSON `json:"metadata"`
	CreatedAt time.Time      `json:"createdAt"`
}

type ItemMetadata struct {
	ItemName        string   `json:"item_name"`
	Price           int64    `json:"price"`
	BasketPrice     *int64   `json:"basket_price,omitempty"`
	Description     string   `json:"description,omitempty"`
	FullDescription string   `json:"full_description,omitempty"`
	Ingredients     string   `json:"ingredients,omitempty"`
	Category        string   `json:"category,omitempty"`
	SpiceLevel      string   `json:"spice_level,omitempty"`
	Allergens       string   `json:"allergens,omitempty"`
	Active          *bool    `json:"active,omitempty"`
	Popular         bool     `json:"popular,omitempty"`
	Seasonal        bool     `json:"seasonal,omitempty"`
	Availability    string   `json:"availability,omitempty"`
	MainImageURL    string   `json:"main_image_url"`
	OtherImageURLs  []string `json:"other_image_urls,omitempty"`
	PortionSize     string   `json:"portion_size,omitempty"`
	PreparationTime string   `json:"preparation_time,omitempty"`
}

// MenuItem is a catalog row with its metadata decoded.
type MenuItem struct {
	ID        uint         `json:"id"`
	CreatedAt time.Time    `json:"createdAt"`
	Meta      ItemMetadata `json:"metadata"`
}

// MenuItem decodes the metadata column best-effort: a malformed blob
// yields an item with zero metadata rather than losing the row, the
// view falls back to placeholder values.
func (r *CatalogRow) MenuItem() MenuItem {
	item := MenuItem{ID: r.ID, CreatedAt: r.CreatedAt}
	_ = json.Unmarshal(r.Metadata, &item.Meta)
	return item
}

// IsActive treats a missing active flag as true.
func (m *MenuItem) IsActive() bool {
	return m.Meta.Active == nil || *m.Meta.Active
}

func (m *MenuItem) DisplayName() string {
	if m.Meta.ItemName == "" {
		return "Unnamed Item"
	}
	return m.Meta.ItemName
}

func (m *MenuItem) Category() string {
	if m.Meta.Category == "" {
		return "general"
	}
	return m.Meta.Category
}

// Description prefers the long-form field when present.
func (m *MenuItem) Description() string {
	if m.Meta.FullDescription != "" {
		return m.Meta.FullDescription
	}
	return m.Meta.Description
}
