package services

import (
	"backend/entity"
	"backend/pkg/money"
	"backend/repository"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrUnknownCoupon = errors.New("unknown coupon code")
	ErrMinimumNotMet = errors.New("order subtotal below coupon minimum")
	ErrInvalidTip    = errors.New("tip not in allowed amounts")
)

// pricing constants, paise
const (
	DeliveryFee    = 4000 // flat ₹40
	TaxRatePercent = 5
)

// tip choices offered at checkout, paise
var AllowedTips = []int64{0, 1000, 2000, 3000, 5000}

func validTip(tip int64) bool {
	for _, t := range AllowedTips {
		if t == tip {
			return true
		}
	}
	return false
}

type PricingService struct {
	DB       *gorm.DB
	Coupons  *repository.CouponRepository
	CartRepo *repository.CartRepository
}

func NewPricingService(db *gorm.DB, cr *repository.CouponRepository, cartRepo *repository.CartRepository) *PricingService {
	return &PricingService{DB: db, Coupons: cr, CartRepo: cartRepo}
}

// Apply validates code against subtotal and returns the coupon. Lookup is
// trimmed and case-insensitive.
func (s *PricingService) Apply(code string, subtotal int64) (*entity.Coupon, error) {
	c, err := s.Coupons.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownCoupon
		}
		return nil, err
	}
	if subtotal < c.MinOrder {
		return nil, ErrMinimumNotMet
	}
	return c, nil
}

// ApplyToCart validates the code against the user's current cart subtotal and
// records it on the cart. Applying a new coupon replaces the previous one.
func (s *PricingService) ApplyToCart(userID uint, code string) (*entity.Coupon, int64, error) {
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, 0, err
	}
	if len(cart.Items) == 0 {
		return nil, 0, ErrCartEmpty
	}
	c, err := s.Apply(code, cart.Subtotal())
	if err != nil {
		return nil, 0, err
	}
	if err := s.CartRepo.SetCoupon(userID, c.Code); err != nil {
		return nil, 0, err
	}
	return c, ComputeDiscount(c, cart.Subtotal()), nil
}

func (s *PricingService) RemoveFromCart(userID uint) error {
	return s.CartRepo.SetCoupon(userID, "")
}

func (s *PricingService) ListCoupons() ([]entity.Coupon, error) {
	return s.Coupons.List()
}

// ComputeDiscount applies the coupon kind to the subtotal. Percentage
// discounts round half-up at paise; both kinds honor MaxDiscount when set.
func ComputeDiscount(c *entity.Coupon, subtotal int64) int64 {
	var d int64
	switch c.Kind {
	case entity.CouponFlat:
		d = c.Value
	case entity.CouponPercentage:
		d = money.PercentOf(subtotal, c.Value)
	default:
		return 0
	}
	if c.MaxDiscount != nil {
		d = money.Min(d, *c.MaxDiscount)
	}
	return d
}

type PricingBreakdown struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Tax         int64 `json:"tax"`
	Discount    int64 `json:"discount"`
	Tip         int64 `json:"tip"`
	Total       int64 `json:"total"`
}

// ComputeBreakdown assembles the payable amount. Derived only; recomputed
// whenever an input changes and never persisted on its own.
func ComputeBreakdown(subtotal, discount, tip int64) PricingBreakdown {
	tax := money.PercentOf(subtotal, TaxRatePercent)
	return PricingBreakdown{
		Subtotal:    subtotal,
		DeliveryFee: DeliveryFee,
		Tax:         tax,
		Discount:    discount,
		Tip:         tip,
		Total:       subtotal + DeliveryFee + tax - discount + tip,
	}
}

// BreakdownForCart computes the breakdown for the user's current cart,
// including its applied coupon if the minimum still holds. A coupon whose
// minimum is no longer met (items removed since apply) contributes zero.
func (s *PricingService) BreakdownForCart(userID uint, tip int64) (*PricingBreakdown, error) {
	if !validTip(tip) {
		return nil, ErrInvalidTip
	}
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	subtotal := cart.Subtotal()

	var discount int64
	if cart.CouponCode != "" {
		if c, err := s.Apply(cart.CouponCode, subtotal); err == nil {
			discount = ComputeDiscount(c, subtotal)
		}
	}

	b := ComputeBreakdown(subtotal, discount, tip)
	return &b, nil
}
