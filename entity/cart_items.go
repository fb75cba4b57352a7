package entity

import (
	"gorm.io/gorm"
)

// CartItem is one line in the cart. Line identity inside a cart is MenuID
// alone (the cart is locked to a single restaurant, so menu id is unique
// within it); adds for the same menu merge into one line.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"`

	// snapshot at add-time so cart display survives menu edits
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"` // paise
	Picture   string `json:"picture"`
	IsVeg     bool   `json:"isVeg"`

	Qty  int    `json:"qty"`
	Note string `json:"note"`
}

func (it *CartItem) LineTotal() int64 {
	return it.UnitPrice * int64(it.Qty)
}
