package entity

import (
	"gorm.io/gorm"
)

type CouponKind string

const (
	CouponFlat       CouponKind = "flat"
	CouponPercentage CouponKind = "percentage"
)

type Coupon struct {
	gorm.Model
	Code   string     `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Detail string     `json:"detail"`
	Kind   CouponKind `gorm:"size:20;not null" json:"kind"`

	// flat: discount amount in paise; percentage: percent points (20 = 20%)
	Value    int64 `json:"value"`
	MinOrder int64 `json:"minOrder"` // paise, 0 = no minimum

	// optional cap on the computed discount, paise
	MaxDiscount *int64 `json:"maxDiscount,omitempty"`
}
