package services

import (
	"backend/entity"
	"backend/repository"
	"errors"

	"gorm.io/gorm"
)

var (
	// Add rejects cross-restaurant items itself; callers may still pre-check
	// with IsItemFromDifferentRestaurant to show a friendlier prompt.
	ErrDifferentRestaurant = errors.New("cart has items from another restaurant")
	ErrMenuNotInRestaurant = errors.New("menu not in this restaurant")
	ErrCartEmpty           = errors.New("cart is empty")
)

// CartNotifier receives a best-effort event after every cart mutation so
// detached UI surfaces (cart badge) can refresh. Failures are ignored.
type CartNotifier interface {
	CartUpdated(userID uint, totalItems int, subtotal int64)
}

type CartService struct {
	DB        *gorm.DB
	CartRepo  *repository.CartRepository
	OrderRepo *repository.OrderRepository // menu/restaurant lookups
	Notifier  CartNotifier                // optional
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, or *repository.OrderRepository, n CartNotifier) *CartService {
	return &CartService{DB: db, CartRepo: cr, OrderRepo: or, Notifier: n}
}

type AddToCartIn struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	MenuID       uint   `json:"menuId" binding:"required"`
	Qty          int    `json:"qty" binding:"omitempty,min=1"`
	Note         string `json:"note"`
}

// CartView carries the cart plus its derived values. The derived fields are
// recomputed from the line list on every read; nothing stores them.
type CartView struct {
	Cart               *entity.Cart `json:"cart"`
	Subtotal           int64        `json:"subtotal"`
	TotalItems         int          `json:"totalItems"`
	ActiveRestaurantID uint         `json:"activeRestaurantId"`
}

func (s *CartService) Get(userID uint) (*CartView, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	return &CartView{
		Cart:               c,
		Subtotal:           c.Subtotal(),
		TotalItems:         c.TotalItems(),
		ActiveRestaurantID: c.ActiveRestaurantID(),
	}, nil
}

// IsItemFromDifferentRestaurant reports whether adding from restaurantID
// would conflict with the cart's current restaurant. Always false for an
// empty cart.
func (s *CartService) IsItemFromDifferentRestaurant(userID, restaurantID uint) (bool, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return false, err
	}
	active := c.ActiveRestaurantID()
	return active != 0 && active != restaurantID, nil
}

// Add puts qty of a menu item into the cart, merging with an existing line
// for the same menu. The single-restaurant invariant is enforced here, not
// left to callers: a conflicting add fails with ErrDifferentRestaurant and
// the cart is untouched.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	// validate the menu before touching the cart: a rejected add must never
	// leave an empty cart locked to a restaurant
	m, err := s.OrderRepo.GetMenuBasics(in.MenuID)
	if err != nil {
		return err
	}
	if m.RestaurantID != in.RestaurantID {
		return ErrMenuNotInRestaurant
	}

	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}
	if c.RestaurantID != 0 && c.RestaurantID != in.RestaurantID {
		return ErrDifferentRestaurant
	}

	line := &entity.CartItem{
		MenuID:    m.ID,
		Name:      m.MenuName,
		UnitPrice: m.Price,
		Picture:   m.Picture,
		IsVeg:     m.IsVeg,
		Qty:       in.Qty,
		Note:      in.Note,
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		// take the restaurant lock together with the first line so a failed
		// insert rolls both back
		if c.RestaurantID == 0 {
			if err := tx.Model(&entity.Cart{}).Where("id = ?", c.ID).
				Update("restaurant_id", in.RestaurantID).Error; err != nil {
				return err
			}
		}
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	}); err != nil {
		return err
	}
	s.notify(userID)
	return nil
}

func (s *CartService) UpdateQty(userID, menuID uint, qty int) error {
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, menuID, qty)
	}); err != nil {
		return err
	}
	s.notify(userID)
	return nil
}

func (s *CartService) RemoveItem(userID, menuID uint) error {
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, menuID)
	}); err != nil {
		return err
	}
	s.notify(userID)
	return nil
}

func (s *CartService) Clear(userID uint) error {
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	}); err != nil {
		return err
	}
	s.notify(userID)
	return nil
}

func (s *CartService) notify(userID uint) {
	if s.Notifier == nil {
		return
	}
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return
	}
	s.Notifier.CartUpdated(userID, c.TotalItems(), c.Subtotal())
}
