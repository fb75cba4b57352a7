package services

import (
	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	Order *entity.Order      `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: o, Items: items}, nil
}

// TrackView is what the tracking screen polls: current status plus the
// display progress fraction.
type TrackView struct {
	OrderID           uint               `json:"orderId"`
	Status            entity.OrderStatus `json:"status"`
	Message           string             `json:"message"`
	Progress          float64            `json:"progress"`
	EstimatedDelivery string             `json:"estimatedDelivery"`
}

func (s *OrderService) Track(userID, orderID uint) (*TrackView, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	return &TrackView{
		OrderID:           o.ID,
		Status:            o.Status,
		Message:           o.Status.Message(),
		Progress:          o.Status.Progress(),
		EstimatedDelivery: o.EstimatedDelivery,
	}, nil
}
