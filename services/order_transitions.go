package services

import (
	"errors"

	"github.com/Eduardo-pena2000/parmesana-web-app/entity"
	"gorm.io/gorm"
)

var (
	ErrOrderNotCancellable = errors.New("no se puede cancelar este pedido")
	ErrOrderNotRateable    = errors.New("solo se pueden calificar pedidos entregados")
	ErrInvalidRating       = errors.New("calificación debe estar entre 1 y 5")
	ErrInvalidTransition   = errors.New("invalid_or_conflict")
)

// ----- Customer actions -----

// Cancel lets the customer back out while the order is still pending or
// confirmed. The guarded update loses gracefully if the kitchen moved first.
func (s *OrderService) Cancel(userID, orderID uint, reason string) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	if !entity.CanCancelOrder(o.Status) {
		return nil, ErrOrderNotCancellable
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, entity.OrderCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderNotCancellable
		}
		return tx.Model(o).Update("cancellation_reason", reason).Error
	})
	if err != nil {
		return nil, err
	}

	o.Status = entity.OrderCancelled
	o.CancellationReason = reason
	s.notify(o)
	return o, nil
}

func (s *OrderService) Rate(userID, orderID uint, rating int, review string) (*entity.Order, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	if !entity.CanRateOrder(o.Status) {
		return nil, ErrOrderNotRateable
	}
	o.Rating = &rating
	o.Review = review
	if err := s.Repo.SaveOrder(o); err != nil {
		return nil, err
	}
	return o, nil
}

// ----- Staff actions -----

// AdvanceStatus moves an order along the workflow graph. Used by the staff
// endpoint; the compare-and-set guard makes concurrent updates safe.
func (s *OrderService) AdvanceStatus(orderID uint, to string) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !entity.CanTransitionOrder(o.Status, to) {
		return nil, ErrInvalidTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		if to == entity.OrderConfirmed {
			return tx.Model(o).Update("payment_status", entity.PaymentApproved).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.Status = to
	if to == entity.OrderConfirmed {
		o.PaymentStatus = entity.PaymentApproved
	}
	s.notify(o)
	return o, nil
}
