package configs

import (
	"encoding/json"
	"log"

	"github.com/bipuldey19/hungrypanda-handler/entity"

	"gorm.io/datatypes"
)

// SeedDemo fills an empty local database with a handful of menu items
// and knowledge base articles so the dashboard has something to show.
// Only runs when DEMO_SEED=true; never against the managed store.
func SeedDemo(cfg *Config) error {
	if !cfg.DemoSeed {
		return nil
	}
	db := DB()

	var count int64
	q := db.Table(cfg.CatalogTable)
	if cfg.CatalogType != "" {
		q = q.Where("type = ?", cfg.CatalogType)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("demo data already present, skipping seed")
		return nil
	}

	items := []entity.ItemMetadata{
		{
			ItemName:        "Chicken Biryani",
			Price:           320,
			Description:     "Fragrant basmati rice layered with spiced chicken",
			Ingredients:     "chicken, basmati rice, onion, spices",
			Category:        "dinner",
			SpiceLevel:      "medium",
			Popular:         true,
			MainImageURL:    "https://placehold.co/600x400?text=Biryani",
			PortionSize:     "serves 1",
			PreparationTime: "35 min",
		},
		{
			ItemName:     "Beef Tehari",
			Price:        280,
			Description:  "Classic Dhaka-style beef and rice, cooked in mustard oil",
			Ingredients:  "beef, rice, mustard oil, green chili",
			Category:     "dinner",
			SpiceLevel:   "hot",
			MainImageURL: "https://placehold.co/600x400?text=Tehari",
		},
		{
			ItemName:     "Vegetable Khichuri",
			Price:        180,
			Description:  "Comfort-food lentil rice with seasonal vegetables",
			Ingredients:  "lentils, rice, mixed vegetables",
			Category:     "lunch",
			Seasonal:     true,
			MainImageURL: "https://placehold.co/600x400?text=Khichuri",
		},
	}
	for _, meta := range items {
		raw, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		row := entity.CatalogRow{Type: cfg.CatalogType, Metadata: datatypes.JSON(raw)}
		if err := db.Table(cfg.CatalogTable).Create(&row).Error; err != nil {
			return err
		}
	}

	kbTable := cfg.KBTable
	kbType := ""
	if cfg.CatalogType != "" {
		kbTable = cfg.CatalogTable
		kbType = "knowledge"
	}
	articles := []entity.KBMetadata{
		{Title: "Packaging guidelines", Category: "operations", Content: "Use sealed containers for curries; rice goes in vented boxes."},
		{Title: "Photo checklist", Category: "content", Content: "Shoot on the white board, 3:2 crop, natural light from the left."},
	}
	for _, meta := range articles {
		raw, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		row := entity.CatalogRow{Type: kbType, Metadata: datatypes.JSON(raw)}
		if err := db.Table(kbTable).Create(&row).Error; err != nil {
			return err
		}
	}

	log.Println("seeded demo catalog:", len(items), "items,", len(articles), "kb articles")
	return nil
}
