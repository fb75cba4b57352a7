package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Tax         int64 `json:"tax"`
	Discount    int64 `json:"discount"`
	Tip         int64 `json:"tip"`
	Total       int64 `json:"total"`

	CouponCode    string `json:"couponCode,omitempty"`
	PaymentMethod string `json:"paymentMethod"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only for detail views

	RestaurantID   uint       `json:"restaurantId"`
	RestaurantName string     `json:"restaurantName"`
	Restaurant     Restaurant `json:"-"`

	Status OrderStatus `gorm:"size:32;index" json:"status"`

	// address snapshot: orders keep what was selected at checkout even if the
	// address is edited or deleted later
	AddressID       uint   `json:"addressId"`
	DeliveryAddress string `json:"deliveryAddress"`

	EstimatedDelivery   string `json:"estimatedDelivery"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`

	Items    []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Payments []Payment   `json:"-"`
}
