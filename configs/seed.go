package configs

import (
	"log"

	"github.com/Eduardo-pena2000/parmesana-web-app/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin() error {
	db := DB()
	phone := getEnv("ADMIN_PHONE", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if phone == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_PHONE/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("phone = ?", phone).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", phone)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Phone:     phone,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
		IsActive:  true,
	}
	return db.Create(&admin).Error
}

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

// SeedMenu loads the starter catalog when the tables are empty.
func SeedMenu() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []entity.Category{
		{Name: "Pizzas", Slug: "pizzas", Icon: "🍕", DisplayOrder: 1, IsActive: true},
		{Name: "Hamburguesas", Slug: "hamburguesas", Icon: "🍔", DisplayOrder: 2, IsActive: true},
		{Name: "Pastas", Slug: "pastas", Icon: "🍝", DisplayOrder: 5, IsActive: true},
		{Name: "Bebidas", Slug: "bebidas", Icon: "🥤", DisplayOrder: 10, IsActive: true},
		{Name: "Postres", Slug: "postres", Icon: "🍰", DisplayOrder: 11, IsActive: true},
	}
	bySlug := map[string]uint{}
	for i := range categories {
		if err := db.FirstOrCreate(&categories[i], entity.Category{Slug: categories[i].Slug}).Error; err != nil {
			return err
		}
		bySlug[categories[i].Slug] = categories[i].ID
	}

	pizzaSizes := []entity.SizeOption{
		{Name: "Chica", Price: d("140")},
		{Name: "Mediana", Price: d("180")},
		{Name: "Grande", Price: d("220")},
	}
	pizzaExtras := []entity.ExtraOption{
		{Name: "Extra queso", Price: d("55"), Available: true},
		{Name: "Orilla rellena", Price: d("45"), Available: true},
		{Name: "Champiñones", Price: d("30"), Available: true},
	}

	items := []entity.MenuItem{
		{
			CategoryID:  bySlug["pizzas"],
			Name:        "Pizza Pepperoni",
			Slug:        "pizza-pepperoni",
			Description: "Clásica pizza de pepperoni con doble queso",
			BasePrice:   d("180"),
			Sizes:       pizzaSizes,
			Extras:      pizzaExtras,
			IsAvailable: true,
			IsPopular:   true,
		},
		{
			CategoryID:  bySlug["pizzas"],
			Name:        "Pizza Hawaiana",
			Slug:        "pizza-hawaiana",
			Description: "Jamón y piña sobre queso mozzarella",
			BasePrice:   d("175"),
			Sizes:       pizzaSizes,
			Extras:      pizzaExtras,
			IsAvailable: true,
		},
		{
			CategoryID:  bySlug["hamburguesas"],
			Name:        "Hamburguesa Doble",
			Slug:        "hamburguesa-doble",
			Description: "Carne angus, tocino y queso cheddar",
			BasePrice:   d("150"),
			Extras: []entity.ExtraOption{
				{Name: "Extra queso", Price: d("20"), Available: true},
				{Name: "Tocino extra", Price: d("25"), Available: true},
			},
			IsAvailable: true,
			IsFeatured:  true,
		},
		{
			CategoryID:  bySlug["pastas"],
			Name:        "Spaghetti a la Boloñesa",
			Slug:        "spaghetti-bolonesa",
			Description: "Pasta con salsa de carne de la casa",
			BasePrice:   d("120"),
			IsAvailable: true,
		},
		{
			CategoryID:  bySlug["bebidas"],
			Name:        "Coca Cola",
			Slug:        "coca-cola",
			Description: "Refresco de cola bien frío",
			BasePrice:   d("35"),
			IsAvailable: true,
		},
		{
			CategoryID:  bySlug["postres"],
			Name:        "Pastel de Chocolate",
			Slug:        "pastel-de-chocolate",
			Description: "Rebanada de pastel con cobertura de chocolate",
			BasePrice:   d("65"),
			IsAvailable: true,
			IsNew:       true,
		},
	}
	for i := range items {
		if err := db.FirstOrCreate(&items[i], entity.MenuItem{Slug: items[i].Slug}).Error; err != nil {
			return err
		}
	}

	log.Println("menu catalog seeded")
	return nil
}
