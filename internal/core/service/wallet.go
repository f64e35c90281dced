package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/platemate/deliverycore/internal/core/domain"
	"github.com/platemate/deliverycore/internal/core/port"
	"github.com/platemate/deliverycore/internal/metrics"
)

// walletSummaryWindow bounds how many recent ledger entries a summary
// replays.
const walletSummaryWindow = 100

// AppendTransaction appends a ledger entry for the partner and, for
// completed entries, moves the cached wallet balance to the entry's
// balance_after. Entry insert and balance update happen in one repository
// transaction with the partner row locked, so concurrent appends against
// the same wallet serialize and never chain off a stale balance.
//
// Pending entries (req.Async) record their projected snapshots but leave
// the cached balance untouched until UpdateTransactionStatus completes
// them.
func (s *Service) AppendTransaction(ctx context.Context,
	partnerID string, req port.WalletEntryRequest) (*domain.WalletTransaction, error) {
	if !req.Type.Valid() {
		metrics.WalletAppends.WithLabelValues("invalid", "rejected").Inc()
		return nil, domain.ErrBadRequest
	}
	if req.Amount <= 0 {
		metrics.WalletAppends.WithLabelValues(string(req.Type), "rejected").Inc()
		return nil, domain.ErrInvalidAmount
	}

	entry, err := s.repo.AppendWalletTransaction(ctx, partnerID,
		func(p *domain.DeliveryPartner) (*domain.WalletTransaction, error) {
			before := p.WalletBalance

			var after int64
			switch req.Type {
			case domain.TransactionDebit:
				if req.Amount > before {
					return nil, domain.ErrInsufficientBalance
				}
				after = before - req.Amount
			case domain.TransactionCredit:
				after = before + req.Amount
			}

			status := domain.TransactionCompleted
			if req.Async {
				status = domain.TransactionPending
			}

			now := time.Now()
			entry := &domain.WalletTransaction{
				TransactionID: newID(),
				PartnerID:     p.ID,
				Type:          req.Type,
				Amount:        req.Amount,
				Status:        status,
				BalanceBefore: before,
				BalanceAfter:  after,
				OrderID:       req.OrderID,
				Description:   req.Description,
				CreatedAt:     now,
				UpdatedAt:     now,
			}

			if status == domain.TransactionCompleted {
				p.WalletBalance = after
			}

			return entry, nil
		})
	if err != nil {
		metrics.WalletAppends.WithLabelValues(string(req.Type), "error").Inc()
		return nil, err
	}

	metrics.WalletAppends.WithLabelValues(string(req.Type), "ok").Inc()
	return entry, nil
}

// CreateOrderPaymentTransaction debits cash the partner collected for an
// order and now owes the platform.
func (s *Service) CreateOrderPaymentTransaction(ctx context.Context,
	partnerID string, orderID string, amount int64) (*domain.WalletTransaction, error) {
	return s.AppendTransaction(ctx, partnerID, port.WalletEntryRequest{
		Type:        domain.TransactionDebit,
		Amount:      amount,
		Description: fmt.Sprintf("cash collected for order %s", orderID),
		OrderID:     &orderID,
	})
}

// CreateEarningsTransaction credits the partner's delivery fee for an order.
func (s *Service) CreateEarningsTransaction(ctx context.Context,
	partnerID string, orderID string, amount int64) (*domain.WalletTransaction, error) {
	return s.AppendTransaction(ctx, partnerID, port.WalletEntryRequest{
		Type:        domain.TransactionCredit,
		Amount:      amount,
		Description: fmt.Sprintf("delivery earnings for order %s", orderID),
		OrderID:     &orderID,
	})
}

func (s *Service) ListTransactions(ctx context.Context,
	partnerID string, filter port.WalletFilter) ([]*domain.WalletTransaction, error) {
	if _, err := s.repo.ReadPartner(ctx, partnerID); err != nil {
		return nil, err
	}
	return s.repo.ListWalletTransactions(ctx, partnerID, filter)
}

// GetWalletSummary replays the most recent ledger entries and reports the
// current balance with credit/debit totals and per-status counts. The
// balance derived from the log must agree with the partner's cached
// balance; drift is logged as a ledger defect.
func (s *Service) GetWalletSummary(ctx context.Context, partnerID string) (*domain.WalletSummary, error) {
	partner, err := s.repo.ReadPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ListWalletTransactions(ctx, partnerID,
		port.WalletFilter{Limit: walletSummaryWindow})
	if err != nil {
		return nil, err
	}

	summary := &domain.WalletSummary{
		PartnerID:     partnerID,
		Balance:       partner.WalletBalance,
		CountByStatus: make(map[domain.TransactionStatus]int),
		Entries:       len(entries),
	}

	// Entries arrive newest first.
	var newestCompleted *domain.WalletTransaction
	for _, e := range entries {
		summary.CountByStatus[e.Status]++
		if e.Status != domain.TransactionCompleted {
			continue
		}
		if newestCompleted == nil {
			newestCompleted = e
		}
		if e.Type == domain.TransactionCredit {
			summary.TotalCredits += e.Amount
		} else {
			summary.TotalDebits += e.Amount
		}
	}

	if newestCompleted != nil && newestCompleted.BalanceAfter != partner.WalletBalance {
		s.logger.Error("wallet balance drifted from ledger",
			zap.String("partner", partnerID),
			zap.Int64("cached", partner.WalletBalance),
			zap.Int64("ledger", newestCompleted.BalanceAfter))
	}

	return summary, nil
}

// UpdateTransactionStatus settles a pending ledger entry. Amount, type and
// the before/after snapshots stay immutable; completion additionally moves
// the cached balance and fails with ErrConflict if another entry completed
// since this one was appended (its balance_before no longer matches the
// wallet).
func (s *Service) UpdateTransactionStatus(ctx context.Context,
	partnerID string, transactionID string, status domain.TransactionStatus) (*domain.WalletTransaction, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidTransactionState
	}
	if status == domain.TransactionPending {
		return nil, domain.ErrBadRequest
	}

	return s.repo.UpdateWalletTransaction(ctx, partnerID, transactionID,
		func(p *domain.DeliveryPartner, t *domain.WalletTransaction) error {
			if t.Status != domain.TransactionPending {
				return domain.ErrTransactionImmutable
			}
			if status == domain.TransactionCompleted {
				if t.BalanceBefore != p.WalletBalance {
					return domain.ErrConflict
				}
				p.WalletBalance = t.BalanceAfter
			}
			t.Status = status
			return nil
		})
}
