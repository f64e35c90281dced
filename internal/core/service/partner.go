package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/platemate/deliverycore/internal/core/domain"
)

func (s *Service) RegisterPartner(ctx context.Context, partner *domain.DeliveryPartner) (*domain.DeliveryPartner, error) {
	now := time.Now()
	partner.WalletBalance = 0
	partner.Orders = []string{}
	partner.CreatedAt = now
	partner.UpdatedAt = now

	newPartner, err := s.repo.CreatePartner(ctx, partner)
	if err != nil {
		s.logger.Error("create partner", zap.Error(err))
		return nil, err
	}
	return newPartner, nil
}

func (s *Service) GetPartner(ctx context.Context, partnerID string) (*domain.DeliveryPartner, error) {
	return s.repo.ReadPartner(ctx, partnerID)
}

func (s *Service) ReportPosition(ctx context.Context, partnerID string, pos domain.GeoPoint) error {
	return s.repo.UpdatePartnerPosition(ctx, partnerID, pos)
}
