package repository

import (
	"github.com/bipuldey19/hungrypanda-handler/configs"
	"github.com/bipuldey19/hungrypanda-handler/entity"

	"gorm.io/gorm"
)

// CatalogRepository reads denormalized rows. It never writes; the
// automation layer owns all mutations.
type CatalogRepository struct {
	DB *gorm.DB

	table   string
	typeTag string // filter for shared tables, empty for dedicated ones
	kbTable string
	kbType  string
}

func NewCatalogRepository(db *gorm.DB, cfg *configs.Config) *CatalogRepository {
	r := &CatalogRepository{
		DB:      db,
		table:   cfg.CatalogTable,
		typeTag: cfg.CatalogType,
		kbTable: cfg.KBTable,
	}
	// Shared-table deployments keep kb articles next to menu rows.
	if cfg.CatalogType != "" {
		r.kbTable = cfg.CatalogTable
		r.kbType = "knowledge"
	}
	return r
}

// ListItems returns every menu row ordered by id ascending.
func (r *CatalogRepository) ListItems() ([]entity.MenuItem, error) {
	var rows []entity.CatalogRow
	q := r.DB.Table(r.table)
	if r.typeTag != "" {
		q = q.Where("type = ?", r.typeTag)
	}
	if err := q.Order("id asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entity.MenuItem, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].MenuItem())
	}
	return items, nil
}

func (r *CatalogRepository) ListKB() ([]entity.KBEntry, error) {
	var rows []entity.CatalogRow
	q := r.DB.Table(r.kbTable)
	if r.kbType != "" {
		q = q.Where("type = ?", r.kbType)
	}
	if err := q.Order("id asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]entity.KBEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, rows[i].KBEntry())
	}
	return entries, nil
}

func (r *CatalogRepository) GetKB(id uint) (*entity.KBEntry, error) {
	var row entity.CatalogRow
	q := r.DB.Table(r.kbTable)
	if r.kbType != "" {
		q = q.Where("type = ?", r.kbType)
	}
	if err := q.Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	entry := row.KBEntry()
	return &entry, nil
}
