package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/platemate/deliverycore/internal/core/domain"
	"github.com/platemate/deliverycore/internal/metrics"
)

// AssignPartner binds an order to exactly one active delivery partner.
//
// The assigning_partner flag is the first durable write so concurrent
// readers can tell an in-flight assignment from an idle order. The actual
// rebinding (symmetry repair on the old partner, set on the new one,
// partner ref + position copy on the order) happens in a single repository
// transaction; concurrent assignments of the same order serialize there and
// the last committed one wins. On any failure after the flag was set, the
// flag is reset best effort before the error is returned.
func (s *Service) AssignPartner(ctx context.Context, orderID string, partnerID string) (*domain.Order, error) {
	if _, err := s.repo.ReadOrder(ctx, orderID); err != nil {
		return nil, err
	}
	partner, err := s.repo.ReadPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if !partner.Assignable() {
		metrics.Assignments.WithLabelValues("rejected").Inc()
		return nil, domain.ErrPartnerInactive
	}

	if err := s.repo.SetAssigningFlag(ctx, orderID, true); err != nil {
		return nil, err
	}

	order, err := s.repo.AssignOrder(ctx, orderID, partnerID)
	if err != nil {
		if resetErr := s.repo.SetAssigningFlag(ctx, orderID, false); resetErr != nil {
			s.logger.Error("reset assigning flag after failed assignment",
				zap.String("order", orderID), zap.Error(resetErr))
		}
		metrics.Assignments.WithLabelValues("error").Inc()
		return nil, err
	}

	s.audit.Record(domain.OrderEvent{
		OrderID:    order.ID,
		Number:     order.Number,
		OldStatus:  string(order.Status),
		NewStatus:  string(order.Status),
		PartnerID:  partnerID,
		OccurredAt: time.Now(),
	})
	metrics.Assignments.WithLabelValues("ok").Inc()

	return order, nil
}
