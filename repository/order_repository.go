package repository

import (
	"backend/entity"
	"time"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) CreatePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID             uint               `json:"id"`
	RestaurantID   uint               `json:"restaurantId"`
	RestaurantName string             `json:"restaurantName"`
	Total          int64              `json:"total"`
	Status         entity.OrderStatus `json:"status"`
	CreatedAt      time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, restaurant_id, restaurant_name, total, status, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// ListActiveOrders returns orders not yet in a terminal status; used to re-arm
// tracking after a restart.
func (r *OrderRepository) ListActiveOrders() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Where("status NOT IN ?", []entity.OrderStatus{entity.StatusDelivered, entity.StatusCancelled}).
		Find(&out).Error
	return out, err
}

// UpdateStatusGuard moves orderID from `from` to `to` only if it is still in
// `from`. Zero rows affected means the order moved underneath us (or the
// transition is invalid); callers treat that as a no-op or conflict. This is
// what keeps the progression forward-only.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- Catalog lookups used by cart/checkout ----------------

func (r *OrderRepository) RestaurantExists(id uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&cnt).Error
	return cnt > 0, err
}

func (r *OrderRepository) GetRestaurant(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *OrderRepository) GetMenuBasics(id uint) (entity.Menu, error) {
	var m entity.Menu
	err := r.DB.Select("id, menu_name, price, picture, is_veg, restaurant_id").First(&m, id).Error
	return m, err
}
