package domain

import "time"

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

func (t TransactionType) Valid() bool {
	return t == TransactionCredit || t == TransactionDebit
}

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionCancelled TransactionStatus = "cancelled"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionPending, TransactionCompleted, TransactionFailed, TransactionCancelled:
		return true
	}
	return false
}

// WalletTransaction is an append-only ledger entry against a partner's
// wallet. Amount, type and the before/after snapshots are immutable once
// written; only Status may change afterwards (pending entries only).
type WalletTransaction struct {
	TransactionID string
	PartnerID     string
	Type          TransactionType
	Amount        int64
	Status        TransactionStatus
	BalanceBefore int64
	BalanceAfter  int64
	OrderID       *string
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type WalletSummary struct {
	PartnerID     string                    `json:"partner_id"`
	Balance       int64                     `json:"balance"`
	TotalCredits  int64                     `json:"total_credits"`
	TotalDebits   int64                     `json:"total_debits"`
	CountByStatus map[TransactionStatus]int `json:"count_by_status"`
	Entries       int                       `json:"entries"`
}
