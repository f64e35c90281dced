package port

import (
	"context"

	"github.com/platemate/deliverycore/internal/core/domain"
)

// UpdateOrderFn mutates an order inside the repository's transaction.
// Returning an error aborts the transaction.
type UpdateOrderFn func(*domain.Order) error

// UpdateWalletFn builds a ledger entry from the partner's current state and
// may adjust the partner's cached balance. Runs inside one transaction with
// the partner row locked.
type UpdateWalletFn func(*domain.DeliveryPartner) (*domain.WalletTransaction, error)

// UpdateWalletTxFn mutates a pending ledger entry's status and, for
// completion, the partner's cached balance. Runs inside one transaction with
// both rows locked.
type UpdateWalletTxFn func(*domain.DeliveryPartner, *domain.WalletTransaction) error

type WalletFilter struct {
	Type   domain.TransactionType
	Status domain.TransactionStatus
	Limit  int
}

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrdersByStatus(ctx context.Context, statuses []domain.OrderStatus) ([]*domain.Order, error)
	UpdateOrder(ctx context.Context, orderID string, updateFn UpdateOrderFn) (*domain.Order, error)
	SetAssigningFlag(ctx context.Context, orderID string, inFlight bool) error
	AssignOrder(ctx context.Context, orderID string, partnerID string) (*domain.Order, error)

	// Delivery partner
	CreatePartner(ctx context.Context, partner *domain.DeliveryPartner) (*domain.DeliveryPartner, error)
	ReadPartner(ctx context.Context, partnerID string) (*domain.DeliveryPartner, error)
	ListActivePartners(ctx context.Context) ([]*domain.DeliveryPartner, error)
	UpdatePartnerPosition(ctx context.Context, partnerID string, pos domain.GeoPoint) error

	// Wallet ledger
	AppendWalletTransaction(ctx context.Context,
		partnerID string, updateFn UpdateWalletFn) (*domain.WalletTransaction, error)
	UpdateWalletTransaction(ctx context.Context,
		partnerID string, transactionID string, updateFn UpdateWalletTxFn) (*domain.WalletTransaction, error)
	ListWalletTransactions(ctx context.Context,
		partnerID string, filter WalletFilter) ([]*domain.WalletTransaction, error)
}
