package repository

import (
	"testing"

	"github.com/Eduardo-pena2000/parmesana-web-app/entity"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func menuTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&entity.Category{}, &entity.MenuItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func seedMenu(t *testing.T, db *gorm.DB) {
	t.Helper()
	pizzas := entity.Category{Name: "Pizzas", Slug: "pizzas", DisplayOrder: 1, IsActive: true}
	drinks := entity.Category{Name: "Bebidas", Slug: "bebidas", DisplayOrder: 2, IsActive: true}
	hidden := entity.Category{Name: "Temporada", Slug: "temporada", IsActive: false}
	for _, c := range []*entity.Category{&pizzas, &drinks, &hidden} {
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("seed category: %v", err)
		}
	}

	items := []entity.MenuItem{
		{CategoryID: pizzas.ID, Name: "Pizza Pepperoni", Slug: "pizza-pepperoni", BasePrice: price("180"), IsAvailable: true, IsPopular: true},
		{CategoryID: pizzas.ID, Name: "Pizza Hawaiana", Slug: "pizza-hawaiana", BasePrice: price("175"), IsAvailable: true},
		{CategoryID: pizzas.ID, Name: "Pizza Secreta", Slug: "pizza-secreta", BasePrice: price("300"), IsAvailable: false},
		{CategoryID: drinks.ID, Name: "Coca Cola", Slug: "coca-cola", BasePrice: price("35"), IsAvailable: true},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			t.Fatalf("seed item: %v", err)
		}
	}
}

func TestMenuItemByIDMissingRow(t *testing.T) {
	db := menuTestDB(t)
	repo := NewMenuRepository(db)

	item, err := repo.MenuItemByID(999)
	if err != nil {
		t.Fatalf("err = %v, want nil for a missing row", err)
	}
	if item != nil {
		t.Fatalf("item = %+v, want nil", item)
	}
}

func TestListCategoriesSkipsInactive(t *testing.T) {
	db := menuTestDB(t)
	seedMenu(t, db)
	repo := NewMenuRepository(db)

	cats, err := repo.ListCategories(true)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("categories = %d, want 2 active", len(cats))
	}
	if cats[0].Slug != "pizzas" {
		t.Errorf("first category = %q, want display order respected", cats[0].Slug)
	}
	// unavailable items are filtered out of the preload
	for _, it := range cats[0].MenuItems {
		if !it.IsAvailable {
			t.Errorf("preloaded unavailable item %q", it.Slug)
		}
	}
}

func TestListMenuItemsFilters(t *testing.T) {
	db := menuTestDB(t)
	seedMenu(t, db)
	repo := NewMenuRepository(db)

	all, total, err := repo.ListMenuItems(MenuItemFilter{})
	if err != nil {
		t.Fatalf("ListMenuItems: %v", err)
	}
	if total != 3 || len(all) != 3 {
		t.Fatalf("total = %d (%d rows), want 3 available items", total, len(all))
	}

	pizzas, total, err := repo.ListMenuItems(MenuItemFilter{CategorySlug: "pizzas"})
	if err != nil {
		t.Fatalf("ListMenuItems pizzas: %v", err)
	}
	if total != 2 {
		t.Errorf("pizzas = %d, want 2", total)
	}
	for _, it := range pizzas {
		if it.Slug == "pizza-secreta" {
			t.Errorf("unavailable item leaked into listing")
		}
	}

	popular, _, err := repo.ListMenuItems(MenuItemFilter{IsPopular: true})
	if err != nil {
		t.Fatalf("ListMenuItems popular: %v", err)
	}
	if len(popular) != 1 || popular[0].Slug != "pizza-pepperoni" {
		t.Errorf("popular = %+v, want only pizza-pepperoni", popular)
	}

	searched, _, err := repo.ListMenuItems(MenuItemFilter{Search: "hawai"})
	if err != nil {
		t.Fatalf("ListMenuItems search: %v", err)
	}
	if len(searched) != 1 || searched[0].Slug != "pizza-hawaiana" {
		t.Errorf("search = %+v, want only pizza-hawaiana", searched)
	}

	cheap, _, err := repo.ListMenuItems(MenuItemFilter{MaxPrice: "100"})
	if err != nil {
		t.Fatalf("ListMenuItems max price: %v", err)
	}
	if len(cheap) != 1 || cheap[0].Slug != "coca-cola" {
		t.Errorf("max price = %+v, want only coca-cola", cheap)
	}
}

func TestMenuItemBySlugRequiresAvailability(t *testing.T) {
	db := menuTestDB(t)
	seedMenu(t, db)
	repo := NewMenuRepository(db)

	if _, err := repo.MenuItemBySlug("pizza-pepperoni"); err != nil {
		t.Fatalf("available slug: %v", err)
	}
	if _, err := repo.MenuItemBySlug("pizza-secreta"); err == nil {
		t.Fatal("unavailable slug resolved, want not found")
	}
}
