package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/platemate/deliverycore/internal/core/domain"
	"github.com/platemate/deliverycore/internal/core/port"
	"github.com/platemate/deliverycore/internal/core/port/mock"
	"github.com/platemate/deliverycore/internal/metrics"
)

// fakeLedger backs the repository mock with an in-memory wallet so ledger
// tests exercise the same closure contract the Postgres repository
// implements: partner locked, entry appended, cached balance persisted in
// one unit.
type fakeLedger struct {
	partner *domain.DeliveryPartner
	entries []*domain.WalletTransaction
}

func (f *fakeLedger) install(repo *mock.MockRepository) {
	repo.EXPECT().AppendWalletTransaction(gomock.Any(), f.partner.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fn port.UpdateWalletFn) (*domain.WalletTransaction, error) {
			entry, err := fn(f.partner)
			if err != nil {
				return nil, err
			}
			f.entries = append(f.entries, entry)
			return entry, nil
		}).AnyTimes()

	repo.EXPECT().UpdateWalletTransaction(gomock.Any(), f.partner.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, transactionID string, fn port.UpdateWalletTxFn) (*domain.WalletTransaction, error) {
			for _, e := range f.entries {
				if e.TransactionID == transactionID {
					if err := fn(f.partner, e); err != nil {
						return nil, err
					}
					return e, nil
				}
			}
			return nil, domain.ErrDataNotFound
		}).AnyTimes()

	repo.EXPECT().ReadPartner(gomock.Any(), f.partner.ID).Return(f.partner, nil).AnyTimes()

	repo.EXPECT().ListWalletTransactions(gomock.Any(), f.partner.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ port.WalletFilter) ([]*domain.WalletTransaction, error) {
			// newest first, like the repository
			list := make([]*domain.WalletTransaction, 0, len(f.entries))
			for i := len(f.entries) - 1; i >= 0; i-- {
				list = append(list, f.entries[i])
			}
			return list, nil
		}).AnyTimes()
}

// completedChain asserts the ledger invariants: adjacent completed entries
// chain balance_after -> balance_before and the cached balance equals the
// newest completed entry's balance_after.
func (f *fakeLedger) assertInvariants(t *testing.T) {
	t.Helper()

	var prev *domain.WalletTransaction
	for _, e := range f.entries {
		if e.Status != domain.TransactionCompleted {
			continue
		}
		assert.Greater(t, e.Amount, int64(0))
		assert.GreaterOrEqual(t, e.BalanceAfter, int64(0))
		if prev != nil {
			assert.Equal(t, prev.BalanceAfter, e.BalanceBefore,
				"entry %s does not chain", e.TransactionID)
		}
		prev = e
	}

	if prev != nil {
		assert.Equal(t, prev.BalanceAfter, f.partner.WalletBalance)
	} else {
		assert.Equal(t, int64(0), f.partner.WalletBalance)
	}
}

func TestService_AppendTransaction_Validation(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockRepository(mockCtrl)
	notifier := mock.NewMockNotifier(mockCtrl)
	s := newTestService(t, mockCtrl, repo, notifier)

	creditRejections := testutil.ToFloat64(metrics.WalletAppends.WithLabelValues("credit", "rejected"))
	invalidRejections := testutil.ToFloat64(metrics.WalletAppends.WithLabelValues("invalid", "rejected"))

	_, err := s.AppendTransaction(context.Background(), "p-1",
		port.WalletEntryRequest{Type: domain.TransactionCredit, Amount: 0})
	assert.Equal(t, domain.ErrInvalidAmount, err)

	_, err = s.AppendTransaction(context.Background(), "p-1",
		port.WalletEntryRequest{Type: domain.TransactionCredit, Amount: -500})
	assert.Equal(t, domain.ErrInvalidAmount, err)

	_, err = s.AppendTransaction(context.Background(), "p-1",
		port.WalletEntryRequest{Type: domain.TransactionType("transfer"), Amount: 100})
	assert.Equal(t, domain.ErrBadRequest, err)

	// rejected requests are visible to metrics
	assert.Equal(t, creditRejections+2,
		testutil.ToFloat64(metrics.WalletAppends.WithLabelValues("credit", "rejected")))
	assert.Equal(t, invalidRejections+1,
		testutil.ToFloat64(metrics.WalletAppends.WithLabelValues("invalid", "rejected")))
}

func TestService_WalletLedger_CreditDebitChain(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockRepository(mockCtrl)
	notifier := mock.NewMockNotifier(mockCtrl)
	ledger := &fakeLedger{partner: &domain.DeliveryPartner{ID: "p-1", IsActive: true}}
	ledger.install(repo)

	s := newTestService(t, mockCtrl, repo, notifier)
	ctx := context.Background()

	// earnings credit from zero
	entry, err := s.AppendTransaction(ctx, "p-1",
		port.WalletEntryRequest{Type: domain.TransactionCredit, Amount: 500})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), entry.BalanceBefore)
	assert.Equal(t, int64(500), entry.BalanceAfter)
	assert.Equal(t, domain.TransactionCompleted, entry.Status)
	assert.Equal(t, int64(500), ledger.partner.WalletBalance)

	// collected cash owed back
	entry, err = s.AppendTransaction(ctx, "p-1",
		port.WalletEntryRequest{Type: domain.TransactionDebit, Amount: 500})
	assert.NoError(t, err)
	assert.Equal(t, int64(500), entry.BalanceBefore)
	assert.Equal(t, int64(0), entry.BalanceAfter)
	assert.Equal(t, int64(0), ledger.partner.WalletBalance)

	// overdraft is rejected and leaves no trace
	_, err = s.AppendTransaction(ctx, "p-1",
		port.WalletEntryRequest{Type: domain.TransactionDebit, Amount: 100})
	assert.Equal(t, domain.ErrInsufficientBalance, err)
	assert.Equal(t, int64(0), ledger.partner.WalletBalance)
	assert.Len(t, ledger.entries, 2)

	ledger.assertInvariants(t)
}

func TestService_WalletLedger_PendingSettlement(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockRepository(mockCtrl)
	notifier := mock.NewMockNotifier(mockCtrl)
	ledger := &fakeLedger{partner: &domain.DeliveryPartner{ID: "p-1", IsActive: true, WalletBalance: 0}}
	ledger.install(repo)

	s := newTestService(t, mockCtrl, repo, notifier)
	ctx := context.Background()

	// a pending credit records projected snapshots but moves no money yet
	pending, err := s.AppendTransaction(ctx, "p-1",
		port.WalletEntryRequest{Type: domain.TransactionCredit, Amount: 300, Async: true})
	assert.NoError(t, err)
	assert.Equal(t, domain.TransactionPending, pending.Status)
	assert.Equal(t, int64(0), pending.BalanceBefore)
	assert.Equal(t, int64(300), pending.BalanceAfter)
	assert.Equal(t, int64(0), ledger.partner.WalletBalance)

	// completion applies the projected movement
	settled, err := s.UpdateTransactionStatus(ctx, "p-1", pending.TransactionID, domain.TransactionCompleted)
	assert.NoError(t, err)
	assert.Equal(t, domain.TransactionCompleted, settled.Status)
	assert.Equal(t, int64(300), ledger.partner.WalletBalance)

	ledger.assertInvariants(t)
}

func TestService_WalletLedger_StaleCompletionConflicts(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockRepository(mockCtrl)
	notifier := mock.NewMockNotifier(mockCtrl)
	ledger := &fakeLedger{partner: &domain.DeliveryPartner{ID: "p-1", IsActive: true}}
	ledger.install(repo)

	s := newTestService(t, mockCtrl, repo, notifier)
	ctx := context.Background()

	pending, err := s.AppendTransaction(ctx, "p-1",
		port.WalletEntryRequest{Type: domain.TransactionCredit, Amount: 300, Async: true})
	assert.NoError(t, err)

	// another credit completes first, moving the balance past the
	// pending entry's snapshot
	_, err = s.AppendTransaction(ctx, "p-1",
		port.WalletEntryRequest{Type: domain.TransactionCredit, Amount: 100})
	assert.NoError(t, err)

	_, err = s.UpdateTransactionStatus(ctx, "p-1", pending.TransactionID, domain.TransactionCompleted)
	assert.Equal(t, domain.ErrConflict, err)
	assert.Equal(t, int64(100), ledger.partner.WalletBalance)

	// cancelling the stale entry is status-only
	cancelled, err := s.UpdateTransactionStatus(ctx, "p-1", pending.TransactionID, domain.TransactionCancelled)
	assert.NoError(t, err)
	assert.Equal(t, domain.TransactionCancelled, cancelled.Status)
	assert.Equal(t, int64(100), ledger.partner.WalletBalance)

	ledger.assertInvariants(t)
}

func TestService_UpdateTransactionStatus_Validation(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockRepository(mockCtrl)
	notifier := mock.NewMockNotifier(mockCtrl)
	ledger := &fakeLedger{partner: &domain.DeliveryPartner{ID: "p-1", IsActive: true}}
	ledger.install(repo)

	s := newTestService(t, mockCtrl, repo, notifier)
	ctx := context.Background()

	_, err := s.UpdateTransactionStatus(ctx, "p-1", "tx-1", domain.TransactionStatus("reversed"))
	assert.Equal(t, domain.ErrInvalidTransactionState, err)

	_, err = s.UpdateTransactionStatus(ctx, "p-1", "tx-1", domain.TransactionPending)
	assert.Equal(t, domain.ErrBadRequest, err)

	// completed entries are immutable
	completed, err := s.AppendTransaction(ctx, "p-1",
		port.WalletEntryRequest{Type: domain.TransactionCredit, Amount: 100})
	assert.NoError(t, err)

	_, err = s.UpdateTransactionStatus(ctx, "p-1", completed.TransactionID, domain.TransactionFailed)
	assert.Equal(t, domain.ErrTransactionImmutable, err)
}

func TestService_DerivedTransactions(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockRepository(mockCtrl)
	notifier := mock.NewMockNotifier(mockCtrl)
	ledger := &fakeLedger{partner: &domain.DeliveryPartner{ID: "p-1", IsActive: true}}
	ledger.install(repo)

	s := newTestService(t, mockCtrl, repo, notifier)
	ctx := context.Background()

	earnings, err := s.CreateEarningsTransaction(ctx, "p-1", "o-1", 3000)
	assert.NoError(t, err)
	assert.Equal(t, domain.TransactionCredit, earnings.Type)
	assert.NotNil(t, earnings.OrderID)
	assert.Equal(t, "o-1", *earnings.OrderID)

	payment, err := s.CreateOrderPaymentTransaction(ctx, "p-1", "o-1", 1500)
	assert.NoError(t, err)
	assert.Equal(t, domain.TransactionDebit, payment.Type)
	assert.Equal(t, int64(1500), ledger.partner.WalletBalance)

	ledger.assertInvariants(t)
}

func TestService_GetWalletSummary(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockRepository(mockCtrl)
	notifier := mock.NewMockNotifier(mockCtrl)
	ledger := &fakeLedger{partner: &domain.DeliveryPartner{ID: "p-1", IsActive: true}}
	ledger.install(repo)

	s := newTestService(t, mockCtrl, repo, notifier)
	ctx := context.Background()

	_, err := s.AppendTransaction(ctx, "p-1",
		port.WalletEntryRequest{Type: domain.TransactionCredit, Amount: 500})
	assert.NoError(t, err)
	_, err = s.AppendTransaction(ctx, "p-1",
		port.WalletEntryRequest{Type: domain.TransactionDebit, Amount: 200})
	assert.NoError(t, err)
	_, err = s.AppendTransaction(ctx, "p-1",
		port.WalletEntryRequest{Type: domain.TransactionCredit, Amount: 50, Async: true})
	assert.NoError(t, err)

	summary, err := s.GetWalletSummary(ctx, "p-1")
	assert.NoError(t, err)

	assert.Equal(t, int64(300), summary.Balance)
	assert.Equal(t, ledger.partner.WalletBalance, summary.Balance)
	assert.Equal(t, int64(500), summary.TotalCredits)
	assert.Equal(t, int64(200), summary.TotalDebits)
	assert.Equal(t, 3, summary.Entries)
	assert.Equal(t, 2, summary.CountByStatus[domain.TransactionCompleted])
	assert.Equal(t, 1, summary.CountByStatus[domain.TransactionPending])

	ledger.assertInvariants(t)
}
