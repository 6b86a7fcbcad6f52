package configs

import (
	"github.com/bipuldey19/hungrypanda-handler/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	database, err := gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

// SetupDatabase migrates the catalog row shape into whichever tables
// this deployment reads from. Against the managed store the tables
// already exist and this is a no-op.
func SetupDatabase(cfg *Config) error {
	if err := db.Table(cfg.CatalogTable).AutoMigrate(&entity.CatalogRow{}); err != nil {
		return err
	}
	if cfg.CatalogType == "" && cfg.KBTable != cfg.CatalogTable {
		if err := db.Table(cfg.KBTable).AutoMigrate(&entity.CatalogRow{}); err != nil {
			return err
		}
	}
	return nil
}
