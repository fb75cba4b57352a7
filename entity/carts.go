package entity

import (
	"gorm.io/gorm"
)

type Cart struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"uniqueIndex"`
	User   User `json:"-"`

	// restaurant lock: 0 means the cart is empty and accepts any restaurant
	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// active coupon code, "" when none; replaced on re-apply, cleared with the cart
	CouponCode string `json:"couponCode"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// Derived values. Always computed from Items, never stored.

func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, it := range c.Items {
		sum += it.LineTotal()
	}
	return sum
}

func (c *Cart) TotalItems() int {
	var n int
	for _, it := range c.Items {
		n += it.Qty
	}
	return n
}

// ActiveRestaurantID is 0 when the cart has no items.
func (c *Cart) ActiveRestaurantID() uint {
	if len(c.Items) == 0 {
		return 0
	}
	return c.RestaurantID
}
