package configs

import (
	"backend/entity"
	"backend/pkg/money"

	"gorm.io/gorm"
)

// SeedCoupons loads the fixed coupon catalog. Idempotent: matched on code.
func SeedCoupons(db *gorm.DB) error {
	cap200 := money.FromRupees(200)
	coupons := []entity.Coupon{
		{Code: "SAVE100", Detail: "Flat ₹100 off on orders above ₹500", Kind: entity.CouponFlat,
			Value: money.FromRupees(100), MinOrder: money.FromRupees(500)},
		{Code: "FLAT20", Detail: "20% off, no minimum", Kind: entity.CouponPercentage,
			Value: 20},
		{Code: "WELCOME50", Detail: "50% off up to ₹200 on orders above ₹300", Kind: entity.CouponPercentage,
			Value: 50, MinOrder: money.FromRupees(300), MaxDiscount: &cap200},
	}
	for _, c := range coupons {
		if err := db.Where("code = ?", c.Code).FirstOrCreate(&c).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedCatalog loads a small demo restaurant/menu set so the cart endpoints
// have something to add. Skipped when restaurants already exist.
func SeedCatalog(db *gorm.DB) error {
	var cnt int64
	if err := db.Model(&entity.Restaurant{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	restaurants := []struct {
		r     entity.Restaurant
		menus []entity.Menu
	}{
		{
			r: entity.Restaurant{Name: "Spice Garden", Area: "Indiranagar", Cuisine: "North Indian", Rating: 4.3, DeliveryETA: "25-30 min"},
			menus: []entity.Menu{
				{MenuName: "Paneer Butter Masala", Price: money.FromRupees(250), IsVeg: true, Category: "Mains"},
				{MenuName: "Butter Chicken", Price: money.FromRupees(320), Category: "Mains"},
				{MenuName: "Garlic Naan", Price: money.FromRupees(60), IsVeg: true, Category: "Breads"},
			},
		},
		{
			r: entity.Restaurant{Name: "Wok This Way", Area: "Koramangala", Cuisine: "Chinese", Rating: 4.1, DeliveryETA: "30-35 min"},
			menus: []entity.Menu{
				{MenuName: "Veg Hakka Noodles", Price: money.FromRupees(180), IsVeg: true, Category: "Noodles"},
				{MenuName: "Chilli Chicken", Price: money.FromRupees(260), Category: "Starters"},
			},
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, e := range restaurants {
			r := e.r
			if err := tx.Create(&r).Error; err != nil {
				return err
			}
			for _, m := range e.menus {
				m.RestaurantID = r.ID
				if err := tx.Create(&m).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
