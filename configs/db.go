package configs

import (
	"backend/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the sqlite database. The handle is returned rather than held
// in a package global so services get it injected and tests can open their
// own in-memory instance.
func Connect(source string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.Menu{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Coupon{},
		&entity.Address{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Payment{},
	)
}
