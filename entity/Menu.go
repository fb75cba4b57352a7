package entity

import (
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	MenuName string `json:"menuName"`
	Detail   string `json:"detail"`
	Price    int64  `json:"price"` // paise
	Picture  string `json:"picture"`
	IsVeg    bool   `json:"isVeg"`
	Category string `json:"category"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload when needed

	OrderItems []OrderItem `json:"-"`
}
