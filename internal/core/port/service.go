package port

import (
	"context"

	"github.com/platemate/deliverycore/internal/core/domain"
)

// WalletEntryRequest carries caller input for a ledger append.
type WalletEntryRequest struct {
	Type        domain.TransactionType
	Amount      int64
	Description string
	OrderID     *string
	// Async requests a pending entry settled later through
	// UpdateTransactionStatus instead of an immediately completed one.
	Async bool
}

type Service interface {
	// Order lifecycle
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, newStatus domain.OrderStatus) (*domain.Order, error)
	AcceptOrder(ctx context.Context, orderID string) (*domain.Order, []string, error)
	DispatchOrder(ctx context.Context, orderID string) (*domain.Order, error)

	// Assignment
	AssignPartner(ctx context.Context, orderID string, partnerID string) (*domain.Order, error)

	// Delivery partner
	RegisterPartner(ctx context.Context, partner *domain.DeliveryPartner) (*domain.DeliveryPartner, error)
	GetPartner(ctx context.Context, partnerID string) (*domain.DeliveryPartner, error)
	ReportPosition(ctx context.Context, partnerID string, pos domain.GeoPoint) error

	// Wallet ledger
	AppendTransaction(ctx context.Context,
		partnerID string, req WalletEntryRequest) (*domain.WalletTransaction, error)
	CreateOrderPaymentTransaction(ctx context.Context,
		partnerID string, orderID string, amount int64) (*domain.WalletTransaction, error)
	CreateEarningsTransaction(ctx context.Context,
		partnerID string, orderID string, amount int64) (*domain.WalletTransaction, error)
	ListTransactions(ctx context.Context,
		partnerID string, filter WalletFilter) ([]*domain.WalletTransaction, error)
	GetWalletSummary(ctx context.Context, partnerID string) (*domain.WalletSummary, error)
	UpdateTransactionStatus(ctx context.Context,
		partnerID string, transactionID string, status domain.TransactionStatus) (*domain.WalletTransaction, error)
}
