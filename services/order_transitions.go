package services

import (
	"backend/entity"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrOrderTerminal      = errors.New("order is in a terminal status")
	ErrTransitionConflict = errors.New("order status changed concurrently")
)

// Advance moves the order exactly one step forward in the progression and
// persists the new status. Returns the new status. A delivered or cancelled
// order is a no-op (delivered orders stay delivered permanently).
func (s *OrderService) Advance(orderID uint) (entity.OrderStatus, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return "", err
	}
	next, ok := o.Status.Next()
	if !ok {
		return o.Status, nil
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, next)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrTransitionConflict
		}
		return nil
	})
	if err != nil {
		// someone else moved the order; not an error for a timer tick
		if errors.Is(err, ErrTransitionConflict) {
			cur, gerr := s.Repo.GetOrder(orderID)
			if gerr != nil {
				return "", gerr
			}
			return cur.Status, nil
		}
		return "", err
	}
	return next, nil
}

// Cancel is the administrative transition: reachable from any non-terminal
// status, never produced by the timer.
func (s *OrderService) Cancel(userID, orderID uint) error {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return err
	}
	if o.Status.IsTerminal() {
		return ErrOrderTerminal
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, entity.StatusCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrTransitionConflict
		}
		return nil
	})
}
