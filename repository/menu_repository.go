package repository

import (
	"errors"

	"github.com/Eduardo-pena2000/parmesana-web-app/entity"
	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// MenuItemByID implements services.CatalogLookup. Missing rows come back as
// (nil, nil) so the assembler can map them to its own unavailable error.
func (r *MenuRepository) MenuItemByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) MenuItemBySlug(slug string) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Where("slug = ? AND is_available = ?", slug, true).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// ListCategories returns active categories ordered for display, optionally
// with their available items preloaded.
func (r *MenuRepository) ListCategories(includeItems bool) ([]entity.Category, error) {
	q := r.DB.Where("is_active = ?", true).
		Order("display_order ASC, name ASC")
	if includeItems {
		q = q.Preload("MenuItems", "is_available = ?", true)
	}
	var cats []entity.Category
	err := q.Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) CategoryBySlug(slug string) (*entity.Category, error) {
	var cat entity.Category
	err := r.DB.Where("slug = ? AND is_active = ?", slug, true).
		Preload("MenuItems", "is_available = ?", true).
		First(&cat).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// MenuItemFilter mirrors the storefront's query string.
type MenuItemFilter struct {
	CategorySlug string
	Search       string
	IsPopular    bool
	IsFeatured   bool
	IsNew        bool
	MinPrice     string
	MaxPrice     string
	Page         int
	Limit        int
}

func (r *MenuRepository) ListMenuItems(f MenuItemFilter) ([]entity.MenuItem, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	q := r.DB.Model(&entity.MenuItem{}).Where("is_available = ?", true)

	if f.CategorySlug != "" {
		var cat entity.Category
		if err := r.DB.Select("id").Where("slug = ?", f.CategorySlug).First(&cat).Error; err == nil {
			q = q.Where("category_id = ?", cat.ID)
		}
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if f.IsPopular {
		q = q.Where("is_popular = ?", true)
	}
	if f.IsFeatured {
		q = q.Where("is_featured = ?", true)
	}
	if f.IsNew {
		q = q.Where("is_new = ?", true)
	}
	if f.MinPrice != "" {
		q = q.Where("base_price >= ?", f.MinPrice)
	}
	if f.MaxPrice != "" {
		q = q.Where("base_price <= ?", f.MaxPrice)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []entity.MenuItem
	err := q.Order("display_order ASC, name ASC").
		Limit(f.Limit).Offset((f.Page - 1) * f.Limit).
		Find(&items).Error
	return items, total, err
}

func (r *MenuRepository) CreateMenuItem(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) UpdateMenuItem(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(fields).Error
}
