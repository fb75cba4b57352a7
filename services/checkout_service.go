package services

import (
	"backend/entity"
	"backend/repository"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNoAddressSelected     = errors.New("no delivery address selected")
	ErrPaymentFailed         = errors.New("payment failed")
	ErrOrderSubmissionFailed = errors.New("order submission failed")
)

// ValidationError names the offending checkout field. Surfaced to the user
// before any payment or order call is made.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Msg }

var expiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
var digitsRe = regexp.MustCompile(`^\d+$`)

type CardIn struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"` // MM/YY
	CVV    string `json:"cvv"`
}

type CheckoutReq struct {
	AddressID     uint                 `json:"addressId"`
	PaymentMethod entity.PaymentMethod `json:"paymentMethod"`
	Tip           int64                `json:"tip"`

	Card                CardIn `json:"card"`
	UpiID               string `json:"upiId"`
	Wallet              string `json:"wallet"`
	Bank                string `json:"bank"`
	SpecialInstructions string `json:"specialInstructions"`
}

// Validate checks method-specific fields. Address existence is checked
// separately because it needs the DB.
func (r *CheckoutReq) Validate() error {
	if r.AddressID == 0 {
		return ErrNoAddressSelected
	}
	if !r.PaymentMethod.Valid() {
		return &ValidationError{Field: "paymentMethod", Msg: "unknown payment method"}
	}
	switch r.PaymentMethod {
	case entity.PayCard:
		num := strings.NewReplacer(" ", "", "-", "").Replace(r.Card.Number)
		if len(num) != 16 || !digitsRe.MatchString(num) {
			return &ValidationError{Field: "card.number", Msg: "card number must be 16 digits"}
		}
		if strings.TrimSpace(r.Card.Name) == "" {
			return &ValidationError{Field: "card.name", Msg: "cardholder name is required"}
		}
		if !expiryRe.MatchString(r.Card.Expiry) {
			return &ValidationError{Field: "card.expiry", Msg: "expiry must be MM/YY"}
		}
		if len(r.Card.CVV) != 3 || !digitsRe.MatchString(r.Card.CVV) {
			return &ValidationError{Field: "card.cvv", Msg: "CVV must be 3 digits"}
		}
	case entity.PayUPI:
		if !strings.Contains(r.UpiID, "@") {
			return &ValidationError{Field: "upiId", Msg: "invalid UPI id"}
		}
	case entity.PayWallet:
		if !entity.ValidWallet(r.Wallet) {
			return &ValidationError{Field: "wallet", Msg: "select a wallet provider"}
		}
	case entity.PayNetBanking:
		if !entity.ValidBank(r.Bank) {
			return &ValidationError{Field: "bank", Msg: "select a bank"}
		}
	case entity.PayCashOnDelivery:
		// no extra fields
	}
	return nil
}

// PaymentAuthorizer performs the (simulated) authorization step. COD never
// reaches it. Tests swap in a declining implementation.
type PaymentAuthorizer interface {
	Authorize(method entity.PaymentMethod, amount int64) (reference string, err error)
}

// simulatedAuthorizer approves everything that passed validation.
type simulatedAuthorizer struct{}

func (simulatedAuthorizer) Authorize(method entity.PaymentMethod, amount int64) (string, error) {
	return fmt.Sprintf("AUTH-%s-%d", strings.ToUpper(string(method)), time.Now().UnixNano()), nil
}

func NewSimulatedAuthorizer() PaymentAuthorizer { return simulatedAuthorizer{} }

// Tracker is how checkout hands a placed order to the status machine.
type Tracker interface {
	Start(orderID uint)
}

type CheckoutService struct {
	DB         *gorm.DB
	CartRepo   *repository.CartRepository
	OrderRepo  *repository.OrderRepository
	AddrRepo   *repository.AddressRepository
	Pricing    *PricingService
	Authorizer PaymentAuthorizer
	Tracking   Tracker // optional
}

func NewCheckoutService(
	db *gorm.DB,
	cartRepo *repository.CartRepository,
	orderRepo *repository.OrderRepository,
	addrRepo *repository.AddressRepository,
	pricing *PricingService,
	auth PaymentAuthorizer,
	tracking Tracker,
) *CheckoutService {
	return &CheckoutService{
		DB: db, CartRepo: cartRepo, OrderRepo: orderRepo, AddrRepo: addrRepo,
		Pricing: pricing, Authorizer: auth, Tracking: tracking,
	}
}

// Checkout runs the linear flow: validate -> authorize -> submit. Any failure
// leaves the cart exactly as it was; the cart is cleared only inside the same
// transaction that creates the order.
func (s *CheckoutService) Checkout(userID uint, req *CheckoutReq) (*entity.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !validTip(req.Tip) {
		return nil, &ValidationError{Field: "tip", Msg: "tip not in allowed amounts"}
	}

	addr, err := s.AddrRepo.GetForUser(userID, req.AddressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoAddressSelected
		}
		return nil, err
	}

	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	subtotal := cart.Subtotal()
	var discount int64
	couponCode := ""
	if cart.CouponCode != "" {
		if c, err := s.Pricing.Apply(cart.CouponCode, subtotal); err == nil {
			discount = ComputeDiscount(c, subtotal)
			couponCode = c.Code
		}
	}
	breakdown := ComputeBreakdown(subtotal, discount, req.Tip)

	// authorize before touching any state; COD pays on delivery
	reference := ""
	if req.PaymentMethod != entity.PayCashOnDelivery {
		ref, err := s.Authorizer.Authorize(req.PaymentMethod, breakdown.Total)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
		}
		reference = ref
	}

	rest, err := s.OrderRepo.GetRestaurant(cart.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderSubmissionFailed, err)
	}

	var order entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order = entity.Order{
			UserID:              userID,
			RestaurantID:        rest.ID,
			RestaurantName:      rest.Name,
			Status:              entity.StatusPlaced,
			Subtotal:            breakdown.Subtotal,
			DeliveryFee:         breakdown.DeliveryFee,
			Tax:                 breakdown.Tax,
			Discount:            breakdown.Discount,
			Tip:                 breakdown.Tip,
			Total:               breakdown.Total,
			CouponCode:          couponCode,
			PaymentMethod:       string(req.PaymentMethod),
			AddressID:           addr.ID,
			DeliveryAddress:     addr.Oneline(),
			EstimatedDelivery:   rest.DeliveryETA,
			SpecialInstructions: req.SpecialInstructions,
		}
		if err := s.OrderRepo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:   order.ID,
				MenuID:    it.MenuID,
				Name:      it.Name,
				Qty:       it.Qty,
				UnitPrice: it.UnitPrice,
				Total:     it.LineTotal(),
				Note:      it.Note,
			}
			if err := s.OrderRepo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		p := entity.Payment{
			Amount:  order.Total,
			Method:  req.PaymentMethod,
			Status:  entity.PaymentPending,
			OrderID: order.ID,
		}
		if reference != "" {
			now := time.Now()
			p.Status = entity.PaymentAuthorized
			p.Reference = reference
			p.PaidAt = &now
		}
		if err := s.OrderRepo.CreatePayment(tx, &p); err != nil {
			return err
		}

		return s.CartRepo.ClearCart(tx, userID)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderSubmissionFailed, err)
	}

	if s.Tracking != nil {
		s.Tracking.Start(order.ID)
	}
	return &order, nil
}
