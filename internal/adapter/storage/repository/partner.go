package repository

import (
	"context"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/platemate/deliverycore/internal/core/domain"
)

var partnerColumns = []string{
	"id", "name", "push_token", "is_active", "is_verified", "is_online",
	"wallet_balance", "assigned_orders", "driver_lat", "driver_lng",
	"created_at", "updated_at",
}

func scanPartner(row pgx.Row) (*domain.DeliveryPartner, error) {
	var (
		partner              domain.DeliveryPartner
		driverLat, driverLng *float64
	)
	err := row.Scan(
		&partner.ID,
		&partner.Name,
		&partner.PushToken,
		&partner.IsActive,
		&partner.IsVerified,
		&partner.IsOnline,
		&partner.WalletBalance,
		&partner.Orders,
		&driverLat,
		&driverLng,
		&partner.CreatedAt,
		&partner.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	partner.DriverPosition = geoPoint(driverLat, driverLng)
	return &partner, nil
}

func (r *Repository) selectPartnerForUpdate(ctx context.Context, tx pgx.Tx, partnerID string) (*domain.DeliveryPartner, error) {
	statement := r.db.QueryBuilder.
		Select(partnerColumns...).
		From("delivery_partners").
		Where(sq.Eq{"id": partnerID}).
		Suffix("FOR UPDATE")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanPartner(tx.QueryRow(ctx, sql, args...))
}

func (r *Repository) CreatePartner(ctx context.Context, partner *domain.DeliveryPartner) (*domain.DeliveryPartner, error) {
	driverLat, driverLng := geoColumns(partner.DriverPosition)
	statement := r.db.QueryBuilder.Insert("delivery_partners").
		Columns(partnerColumns...).
		Values(partner.ID, partner.Name, partner.PushToken,
			partner.IsActive, partner.IsVerified, partner.IsOnline,
			partner.WalletBalance, partner.Orders,
			driverLat, driverLng,
			partner.CreatedAt, partner.UpdatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, translateError(err)
	}
	return partner, nil
}

func (r *Repository) ReadPartner(ctx context.Context, partnerID string) (*domain.DeliveryPartner, error) {
	statement := r.db.QueryBuilder.
		Select(partnerColumns...).
		From("delivery_partners").
		Where(sq.Eq{"id": partnerID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanPartner(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) ListActivePartners(ctx context.Context) ([]*domain.DeliveryPartner, error) {
	statement := r.db.QueryBuilder.
		Select(partnerColumns...).
		From("delivery_partners").
		Where(sq.Eq{"is_active": true})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.DeliveryPartner, 0)
	for rows.Next() {
		partner, err := scanPartner(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, partner)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// UpdatePartnerPosition stores the partner's reported location and refreshes
// the copy on every order currently assigned to them.
func (r *Repository) UpdatePartnerPosition(ctx context.Context, partnerID string, pos domain.GeoPoint) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		now := time.Now()

		statement := r.db.QueryBuilder.Update("delivery_partners").
			Set("driver_lat", pos.Lat).
			Set("driver_lng", pos.Lng).
			Set("updated_at", now).
			Where(sq.Eq{"id": partnerID})

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrDataNotFound
		}

		orders := r.db.QueryBuilder.Update("orders").
			Set("driver_lat", pos.Lat).
			Set("driver_lng", pos.Lng).
			Set("updated_at", now).
			Where(sq.Eq{"assigned_partner_id": partnerID})

		sql, args, err = orders.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
}

// AssignOrder rebinds the order to partnerID as one atomic unit: it removes
// the order from a previously bound partner's set, adds it to the new
// partner's set, points the order at the new partner with a copy of their
// last known position and clears the in-flight flag. The order row and
// every touched partner row are locked, so concurrent assignments of the
// same order serialize and the last committed one wins.
func (r *Repository) AssignOrder(ctx context.Context, orderID string, partnerID string) (*domain.Order, error) {
	var order *domain.Order

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.
			Select(orderColumns...).
			From("orders").
			Where(sq.Eq{"id": orderID}).
			Suffix("FOR UPDATE")

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		order, err = scanOrder(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			return err
		}

		var oldPartnerID string
		if order.AssignedPartnerID != nil && *order.AssignedPartnerID != partnerID {
			oldPartnerID = *order.AssignedPartnerID
		}

		// Lock partner rows in id order so two concurrent reassignments
		// touching the same pair can not deadlock.
		lockIDs := []string{partnerID}
		if oldPartnerID != "" {
			lockIDs = append(lockIDs, oldPartnerID)
			sort.Strings(lockIDs)
		}
		partners := make(map[string]*domain.DeliveryPartner, len(lockIDs))
		for _, id := range lockIDs {
			p, err := r.selectPartnerForUpdate(ctx, tx, id)
			if err != nil {
				return err
			}
			partners[id] = p
		}

		newPartner := partners[partnerID]
		if !newPartner.Assignable() {
			return domain.ErrPartnerInactive
		}

		now := time.Now()

		if oldPartnerID != "" {
			remove := r.db.QueryBuilder.Update("delivery_partners").
				Set("assigned_orders", sq.Expr("array_remove(assigned_orders, ?)", orderID)).
				Set("updated_at", now).
				Where(sq.Eq{"id": oldPartnerID})

			sql, args, err = remove.ToSql()
			if err != nil {
				return err
			}
			if _, err = tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}

		// array_remove first keeps the set duplicate free on re-assign of
		// the same partner.
		add := r.db.QueryBuilder.Update("delivery_partners").
			Set("assigned_orders", sq.Expr("array_append(array_remove(assigned_orders, ?), ?)", orderID, orderID)).
			Set("updated_at", now).
			Where(sq.Eq{"id": partnerID})

		sql, args, err = add.ToSql()
		if err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		driverLat, driverLng := geoColumns(newPartner.DriverPosition)
		update := r.db.QueryBuilder.Update("orders").
			Set("assigned_partner_id", partnerID).
			Set("driver_lat", driverLat).
			Set("driver_lng", driverLng).
			Set("assigning_partner", false).
			Set("updated_at", now).
			Where(sq.Eq{"id": orderID})

		sql, args, err = update.ToSql()
		if err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		order.AssignedPartnerID = &partnerID
		order.DriverPosition = newPartner.DriverPosition
		order.AssigningPartner = false
		order.UpdatedAt = now

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}
