package configs

import (
	"github.com/Eduardo-pena2000/parmesana-web-app/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	// TranslateError so a duplicate order number comes back as
	// gorm.ErrDuplicatedKey instead of a raw sqlite error string.
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{}, &entity.Address{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Order{},
		&entity.Reservation{},
	)
}
