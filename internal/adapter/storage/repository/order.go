package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/platemate/deliverycore/internal/core/domain"
	"github.com/platemate/deliverycore/internal/core/port"
)

var orderColumns = []string{
	"id", "number", "status", "assigned_partner_id", "assigning_partner",
	"source_lat", "source_lng", "dest_lat", "dest_lng",
	"driver_lat", "driver_lng",
	"order_value", "delivery_fee", "payment_status", "payment_id",
	"accepted_at", "created_at", "updated_at",
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		order                domain.Order
		driverLat, driverLng *float64
	)
	err := row.Scan(
		&order.ID,
		&order.Number,
		&order.Status,
		&order.AssignedPartnerID,
		&order.AssigningPartner,
		&order.Source.Lat,
		&order.Source.Lng,
		&order.Destination.Lat,
		&order.Destination.Lng,
		&driverLat,
		&driverLng,
		&order.OrderValue,
		&order.DeliveryFee,
		&order.PaymentStatus,
		&order.PaymentID,
		&order.AcceptedAt,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	order.DriverPosition = geoPoint(driverLat, driverLng)
	return &order, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	driverLat, driverLng := geoColumns(order.DriverPosition)
	statement := r.db.QueryBuilder.Insert("orders").
		Columns(orderColumns...).
		Values(order.ID, order.Number, order.Status,
			order.AssignedPartnerID, order.AssigningPartner,
			order.Source.Lat, order.Source.Lng,
			order.Destination.Lat, order.Destination.Lng,
			driverLat, driverLng,
			order.OrderValue, order.DeliveryFee,
			order.PaymentStatus, order.PaymentID,
			order.AcceptedAt, order.CreatedAt, order.UpdatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, translateError(err)
	}
	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanOrder(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) ListOrdersByStatus(ctx context.Context, statuses []domain.OrderStatus) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": statuses}).
		OrderBy("created_at DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

// UpdateOrder runs updateFn against the row-locked order and persists the
// mutable lifecycle fields in the same transaction.
func (r *Repository) UpdateOrder(ctx context.Context, orderID string, updateFn port.UpdateOrderFn) (*domain.Order, error) {
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

		if err := updateFn(order); err != nil {
			return err
		}
		order.UpdatedAt = time.Now()

		update := r.db.QueryBuilder.Update("orders").
			Set("status", order.Status).
			Set("assigning_partner", order.AssigningPartner).
			Set("accepted_at", order.AcceptedAt).
			Set("updated_at", order.UpdatedAt).
			Where(sq.Eq{"id": orderID})

		sql, args, err = update.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *Repository) SetAssigningFlag(ctx context.Context, orderID string, inFlight bool) error {
	statement := r.db.QueryBuilder.Update("orders").
		Set("assigning_partner", inFlight).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}
