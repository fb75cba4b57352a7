package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name    string  `json:"name"`
	Area    string  `json:"area"`
	Cuisine string  `json:"cuisine"`
	Picture string  `json:"picture"`
	Rating  float64 `json:"rating"`
	// display label like "25-30 min", snapshotted onto orders
	DeliveryETA string `json:"deliveryEta"`
	IsOpen      bool   `gorm:"default:true" json:"isOpen"`

	Menus  []Menu  `json:"-"`
	Orders []Order `json:"-"`
}
