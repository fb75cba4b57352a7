package services

import (
	"backend/entity"
	"log"
	"sync"
	"time"
)

// OrderNotifier pushes a best-effort status notification; a failed or absent
// notifier never blocks or rolls back a transition.
type OrderNotifier interface {
	OrderStatusChanged(userID, orderID uint, status entity.OrderStatus, message string)
}

// TrackingService drives placed orders through the delivery milestones on a
// fixed timer, one step per tick. Status lives in the DB, so tracking is
// resumable: re-arming simply reads the persisted status and continues with a
// fresh full interval (we do not reconstruct elapsed time).
type TrackingService struct {
	Orders   *OrderService
	Notifier OrderNotifier // optional
	Interval time.Duration

	mu     sync.Mutex
	active map[uint]chan struct{}
}

func NewTrackingService(orders *OrderService, notifier OrderNotifier, interval time.Duration) *TrackingService {
	return &TrackingService{
		Orders:   orders,
		Notifier: notifier,
		Interval: interval,
		active:   make(map[uint]chan struct{}),
	}
}

// Start arms the advance timer for an order. Idempotent: a second Start for
// the same order is a no-op while the first is running.
func (t *TrackingService) Start(orderID uint) {
	t.mu.Lock()
	if _, ok := t.active[orderID]; ok {
		t.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	t.active[orderID] = stop
	t.mu.Unlock()

	go t.run(orderID, stop)
}

// Stop disarms the timer (tracking view unmounted, order cancelled). The
// order keeps its persisted status and can be re-armed later with Start.
func (t *TrackingService) Stop(orderID uint) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if stop, ok := t.active[orderID]; ok {
		close(stop)
		delete(t.active, orderID)
	}
}

// Resume re-arms tracking for every non-terminal order, called once at boot.
func (t *TrackingService) Resume() error {
	orders, err := t.Orders.Repo.ListActiveOrders()
	if err != nil {
		return err
	}
	for _, o := range orders {
		t.Start(o.ID)
	}
	return nil
}

func (t *TrackingService) run(orderID uint, stop chan struct{}) {
	defer func() {
		t.mu.Lock()
		// only clear our own registration: Stop followed by a quick Start
		// replaces the entry, and the new timer must survive this exit
		if t.active[orderID] == stop {
			delete(t.active, orderID)
		}
		t.mu.Unlock()
	}()

	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			status, err := t.Orders.Advance(orderID)
			if err != nil {
				log.Printf("tracking: advance order %d: %v", orderID, err)
				return
			}
			t.notify(orderID, status)
			if status.IsTerminal() {
				return
			}
		}
	}
}

func (t *TrackingService) notify(orderID uint, status entity.OrderStatus) {
	if t.Notifier == nil {
		return
	}
	o, err := t.Orders.Repo.GetOrder(orderID)
	if err != nil {
		log.Printf("tracking: notify order %d: %v", orderID, err)
		return
	}
	t.Notifier.OrderStatusChanged(o.UserID, o.ID, status, status.Message())
}
