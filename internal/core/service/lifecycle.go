package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/platemate/deliverycore/internal/core/domain"
	"github.com/platemate/deliverycore/internal/core/port"
	"github.com/platemate/deliverycore/internal/metrics"
)

func (s *Service) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	now := time.Now()
	order.ID = newID()
	order.Number = newOrderNumber(now)
	order.Status = domain.OrderStatusYetToBeAccepted
	order.AssignedPartnerID = nil
	order.AssigningPartner = false
	order.CreatedAt = now
	order.UpdatedAt = now

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("create order", zap.Error(err))
		return nil, err
	}

	s.audit.Record(domain.OrderEvent{
		OrderID:    newOrder.ID,
		Number:     newOrder.Number,
		NewStatus:  string(newOrder.Status),
		OccurredAt: now,
	})

	return newOrder, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.repo.ReadOrder(ctx, orderID)
}

func (s *Service) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.ListOrdersByStatus(ctx, []domain.OrderStatus{status})
}

// UpdateStatus applies a single transition of the order state machine.
// Moves not present in the transition table fail with ErrInvalidTransition;
// delivered and declined are terminal.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, newStatus domain.OrderStatus) (*domain.Order, error) {
	if !newStatus.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	var oldStatus domain.OrderStatus
	order, err := s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		oldStatus = o.Status
		if !o.Status.CanTransitionTo(newStatus) {
			return domain.ErrInvalidTransition
		}
		if newStatus == domain.OrderStatusDispatched {
			if o.AssignedPartnerID == nil && !o.AssigningPartner {
				return domain.ErrPreconditionFailed
			}
			o.AssigningPartner = false
		}
		o.Status = newStatus
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordTransition(order, oldStatus)
	return order, nil
}

// AcceptOrder moves a fresh order to preparing, stamps the acceptance time
// and fans a push notification out to every active partner with a push
// token. Returns the ids of the partners a notification was scheduled for.
// Fan-out failures never roll back the status change.
func (s *Service) AcceptOrder(ctx context.Context, orderID string) (*domain.Order, []string, error) {
	var oldStatus domain.OrderStatus
	order, err := s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		oldStatus = o.Status
		if o.Status != domain.OrderStatusYetToBeAccepted {
			return domain.ErrInvalidTransition
		}
		now := time.Now()
		o.Status = domain.OrderStatusPreparing
		o.AcceptedAt = &now
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.recordTransition(order, oldStatus)

	notified := s.notifyActivePartners(ctx, order)
	return order, notified, nil
}

// DispatchOrder marks an assigned order as out for delivery and clears the
// in-flight assignment flag.
func (s *Service) DispatchOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var oldStatus domain.OrderStatus
	order, err := s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		oldStatus = o.Status
		if o.AssignedPartnerID == nil && !o.AssigningPartner {
			return domain.ErrPreconditionFailed
		}
		if !o.Status.CanTransitionTo(domain.OrderStatusDispatched) {
			return domain.ErrInvalidTransition
		}
		o.Status = domain.OrderStatusDispatched
		o.AssigningPartner = false
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordTransition(order, oldStatus)
	return order, nil
}

func (s *Service) notifyActivePartners(ctx context.Context, order *domain.Order) []string {
	partners, err := s.repo.ListActivePartners(ctx)
	if err != nil {
		// Notification delivery is best effort, the accepted order stands.
		s.logger.Error("list partners for notification", zap.Error(err))
		return []string{}
	}

	notified := make([]string, 0, len(partners))
	for _, p := range partners {
		if p.PushToken == "" {
			continue
		}
		s.notifier.Schedule(port.PushNotification{
			Token: p.PushToken,
			Title: "New order available",
			Body:  "Order " + order.Number + " is being prepared",
			Data:  map[string]string{"order_id": order.ID},
		})
		notified = append(notified, p.ID)
	}
	return notified
}

func (s *Service) recordTransition(order *domain.Order, oldStatus domain.OrderStatus) {
	partnerID := ""
	if order.AssignedPartnerID != nil {
		partnerID = *order.AssignedPartnerID
	}
	s.audit.Record(domain.OrderEvent{
		OrderID:    order.ID,
		Number:     order.Number,
		OldStatus:  string(oldStatus),
		NewStatus:  string(order.Status),
		PartnerID:  partnerID,
		OccurredAt: order.UpdatedAt,
	})
	metrics.StatusTransitions.WithLabelValues(string(oldStatus), string(order.Status)).Inc()
}
