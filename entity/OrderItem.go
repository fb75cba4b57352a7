package entity

import (
	"gorm.io/gorm"
)

// OrderItem is an immutable snapshot of a cart line at checkout.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"`

	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	Total     int64  `json:"total"`
	Note      string `json:"note,omitempty"`
}
