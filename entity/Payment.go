package entity

import (
	"time"

	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending" // cash on delivery
	PaymentAuthorized PaymentStatus = "authorized"
)

type Payment struct {
	gorm.Model
	Amount    int64         `json:"amount"`
	Method    PaymentMethod `gorm:"size:20" json:"method"`
	Status    PaymentStatus `gorm:"size:20" json:"status"`
	Reference string        `json:"reference"` // authorization reference from the gateway
	PaidAt    *time.Time    `json:"paidAt,omitempty"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`
}
