package repository

import (
	"littlelemon/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) ListCategories() ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

// MenuFilter mirrors the list query params. Zero values mean "no filter".
type MenuFilter struct {
	CategorySlug string
	Search       string
	Featured     *bool
	Ordering     string // price | -price | title | -title
	Page         int
	Limit        int
}

func (r *MenuRepository) ListMenuItems(f MenuFilter) ([]entity.MenuItem, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	q := r.DB.Model(&entity.MenuItem{}).
		Joins("JOIN categories ON categories.id = menu_items.category_id")
	if f.CategorySlug != "" {
		q = q.Where("categories.slug = ?", f.CategorySlug)
	}
	if f.Search != "" {
		pat := "%" + f.Search + "%"
		q = q.Where("menu_items.title LIKE ? OR categories.title LIKE ?", pat, pat)
	}
	if f.Featured != nil {
		q = q.Where("menu_items.featured = ?", *f.Featured)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch f.Ordering {
	case "price":
		q = q.Order("menu_items.price")
	case "-price":
		q = q.Order("menu_items.price DESC")
	case "title":
		q = q.Order("menu_items.title")
	case "-title":
		q = q.Order("menu_items.title DESC")
	default:
		q = q.Order("menu_items.id")
	}

	var items []entity.MenuItem
	err := q.Preload("Category").
		Limit(f.Limit).Offset((f.Page - 1) * f.Limit).
		Find(&items).Error
	return items, total, err
}

func (r *MenuRepository) GetMenuItem(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Preload("Category").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetMenuBasics fetches just what pricing needs.
func (r *MenuRepository) GetMenuBasics(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Select("id, price").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
