package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/platemate/deliverycore/internal/core/domain"
	"github.com/platemate/deliverycore/internal/core/port"
)

var walletColumns = []string{
	"transaction_id", "partner_id", "type", "amount", "status",
	"balance_before", "balance_after", "order_id", "description",
	"created_at", "updated_at",
}

func scanWalletTransaction(row pgx.Row) (*domain.WalletTransaction, error) {
	var t domain.WalletTransaction
	err := row.Scan(
		&t.TransactionID,
		&t.PartnerID,
		&t.Type,
		&t.Amount,
		&t.Status,
		&t.BalanceBefore,
		&t.BalanceAfter,
		&t.OrderID,
		&t.Description,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &t, nil
}

// AppendWalletTransaction inserts the entry built by updateFn and persists
// the partner's cached balance in the same transaction. The partner row is
// locked first, so concurrent appends against one wallet serialize and each
// entry chains off the committed balance of the previous one.
func (r *Repository) AppendWalletTransaction(ctx context.Context,
	partnerID string, updateFn port.UpdateWalletFn) (*domain.WalletTransaction, error) {
	var entry *domain.WalletTransaction

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		partner, err := r.selectPartnerForUpdate(ctx, tx, partnerID)
		if err != nil {
			return err
		}

		entry, err = updateFn(partner)
		if err != nil {
			return err
		}

		insert := r.db.QueryBuilder.Insert("wallet_transactions").
			Columns(walletColumns...).
			Values(entry.TransactionID, entry.PartnerID, entry.Type,
				entry.Amount, entry.Status,
				entry.BalanceBefore, entry.BalanceAfter,
				entry.OrderID, entry.Description,
				entry.CreatedAt, entry.UpdatedAt)

		sql, args, err := insert.ToSql()
		if err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, sql, args...); err != nil {
			return translateError(err)
		}

		return r.persistWalletBalance(ctx, tx, partner)
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// UpdateWalletTransaction applies updateFn to the row-locked entry and its
// partner. Only the entry's status and the partner's cached balance are
// persisted; the financial fields are immutable after creation.
func (r *Repository) UpdateWalletTransaction(ctx context.Context,
	partnerID string, transactionID string, updateFn port.UpdateWalletTxFn) (*domain.WalletTransaction, error) {
	var entry *domain.WalletTransaction

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		partner, err := r.selectPartnerForUpdate(ctx, tx, partnerID)
		if err != nil {
			return err
		}

		statement := r.db.QueryBuilder.
			Select(walletColumns...).
			From("wallet_transactions").
			Where(sq.Eq{"transaction_id": transactionID, "partner_id": partnerID}).
			Suffix("FOR UPDATE")

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		entry, err = scanWalletTransaction(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			return err
		}

		if err := updateFn(partner, entry); err != nil {
			return err
		}
		entry.UpdatedAt = time.Now()

		update := r.db.QueryBuilder.Update("wallet_transactions").
			Set("status", entry.Status).
			Set("updated_at", entry.UpdatedAt).
			Where(sq.Eq{"transaction_id": transactionID})

		sql, args, err = update.ToSql()
		if err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		return r.persistWalletBalance(ctx, tx, partner)
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *Repository) persistWalletBalance(ctx context.Context, tx pgx.Tx, partner *domain.DeliveryPartner) error {
	update := r.db.QueryBuilder.Update("delivery_partners").
		Set("wallet_balance", partner.WalletBalance).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": partner.ID})

	sql, args, err := update.ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) ListWalletTransactions(ctx context.Context,
	partnerID string, filter port.WalletFilter) ([]*domain.WalletTransaction, error) {
	statement := r.db.QueryBuilder.
		Select(walletColumns...).
		From("wallet_transactions").
		Where(sq.Eq{"partner_id": partnerID}).
		OrderBy("created_at DESC")

	if filter.Type != "" {
		statement = statement.Where(sq.Eq{"type": filter.Type})
	}
	if filter.Status != "" {
		statement = statement.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Limit > 0 {
		statement = statement.Limit(uint64(filter.Limit))
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.WalletTransaction, 0)
	for rows.Next() {
		t, err := scanWalletTransaction(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}
