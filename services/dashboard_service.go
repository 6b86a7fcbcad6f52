package services

import (
	"sort"
	"strings"
	"time"

	"github.com/bipuldey19/hungrypanda-handler/entity"
)

const descriptionLimit = 100

// Filters come straight from the dashboard query string; all of them
// apply in memory over the current snapshot, no round trip.
type Filters struct {
	Status   string // "active", "inactive" or "" for all
	Category string
	Sort     string // "name", "price_asc", "price_desc", "newest"
}

type Card struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	BasketPrice *int64    `json:"basketPrice,omitempty"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	SpiceLevel  string    `json:"spiceLevel,omitempty"`
	Allergens   string    `json:"allergens,omitempty"`
	Active      bool      `json:"active"`
	Popular     bool      `json:"popular"`
	Seasonal    bool      `json:"seasonal"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UIState     string    `json:"uiState"`
}

type Stats struct {
	Count        int     `json:"count"`
	ActiveCount  int     `json:"activeCount"`
	PopularCount int     `json:"popularCount"`
	AveragePrice float64 `json:"averagePrice"`
}

type DashboardView struct {
	Items []Card  `json:"items"`
	Stats Stats   `json:"stats"`
	Total int     `json:"total"`
	Query Filters `json:"-"`
}

// DashboardService builds the card view the admin UI renders.
type DashboardService struct {
	Catalog ItemLister
}

func NewDashboardService(catalog ItemLister) *DashboardService {
	return &DashboardService{Catalog: catalog}
}

// Render fetches the snapshot, computes stats over the full fetched
// set, then filters and sorts for display. On a read error the view
// degrades to an empty list and the error is handed back for the
// caller to surface. ui is a copy of the session's per-item state.
func (s *DashboardService) Render(f Filters, ui map[uint]entity.ItemUIState) (*DashboardView, error) {
	items, err := s.Catalog.ListItems()
	view := &DashboardView{
		Items: []Card{},
		Stats: ComputeStats(items),
		Total: len(items),
		Query: f,
	}
	if err != nil {
		return view, err
	}

	shown := SortItems(FilterItems(items, f), f.Sort)
	for i := range shown {
		view.Items = append(view.Items, buildCard(&shown[i], ui))
	}
	return view, nil
}

func buildCard(m *entity.MenuItem, ui map[uint]entity.ItemUIState) Card {
	card := Card{
		ID:          m.ID,
		Name:        m.DisplayName(),
		Price:       m.Meta.Price,
		BasketPrice: m.Meta.BasketPrice,
		Description: truncate(m.Description(), descriptionLimit),
		Category:    m.Category(),
		SpiceLevel:  m.Meta.SpiceLevel,
		Allergens:   m.Meta.Allergens,
		Active:      m.IsActive(),
		Popular:     m.Meta.Popular,
		Seasonal:    m.Meta.Seasonal,
		ImageURL:    m.Meta.MainImageURL,
		CreatedAt:   m.CreatedAt,
		UIState:     entity.UIStateNone.String(),
	}
	if card.ImageURL == "" {
		card.ImageURL = "https://placehold.co/600x400?text=No+Image"
	}
	if ui != nil {
		card.UIState = ui[m.ID].String()
	}
	return card
}

func FilterItems(items []entity.MenuItem, f Filters) []entity.MenuItem {
	out := make([]entity.MenuItem, 0, len(items))
	for i := range items {
		m := &items[i]
		switch f.Status {
		case "active":
			if !m.IsActive() {
				continue
			}
		case "inactive":
			if m.IsActive() {
				continue
			}
		}
		if f.Category != "" && m.Category() != f.Category {
			continue
		}
		out = append(out, *m)
	}
	return out
}

// SortItems returns a sorted copy; the snapshot itself is shared and
// must stay untouched.
func SortItems(items []entity.MenuItem, key string) []entity.MenuItem {
	out := make([]entity.MenuItem, len(items))
	copy(out, items)

	switch key {
	case "name":
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].DisplayName()) < strings.ToLower(out[j].DisplayName())
		})
	case "price_asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Meta.Price < out[j].Meta.Price })
	case "price_desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Meta.Price > out[j].Meta.Price })
	case "newest":
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	}
	return out
}

// ComputeStats runs over the fetched set, not the filtered one.
func ComputeStats(items []entity.MenuItem) Stats {
	st := Stats{Count: len(items)}
	var total int64
	for i := range items {
		if items[i].IsActive() {
			st.ActiveCount++
		}
		if items[i].Meta.Popular {
			st.PopularCount++
		}
		total += items[i].Meta.Price
	}
	if st.Count > 0 {
		st.AveragePrice = float64(total) / float64(st.Count)
	}
	return st
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
