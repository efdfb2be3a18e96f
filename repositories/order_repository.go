package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"trends-shop/config"
	"trends-shop/models"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Insert(ctx context.Context, order *models.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}
	address, err := json.Marshal(order.Address)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO orders (id, user_id, items, amount, address, status, payment_method, payment, gateway_ref, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = config.DB.Exec(ctx, query,
		order.ID, order.UserID, items, order.Amount, address,
		order.Status, string(order.PaymentMethod), order.Payment,
		order.GatewayRef, order.CreatedAt, order.UpdatedAt,
	)
	return err
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	query := `SELECT id, user_id, items, amount, address, status, payment_method, payment, gateway_ref, created_at, updated_at
	          FROM orders WHERE id = $1`

	row := config.DB.QueryRow(ctx, query, id)
	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int) ([]models.Order, error) {
	query := `SELECT id, user_id, items, amount, address, status, payment_method, payment, gateway_ref, created_at, updated_at
	          FROM orders WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	query := `SELECT id, user_id, items, amount, address, status, payment_method, payment, gateway_ref, created_at, updated_at
	          FROM orders ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *OrderRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Order, error) {
	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

// UpdateStatus assigns any member of the status enumeration. Ordering is
// deliberately not enforced here.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := config.DB.Exec(ctx,
		`UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) MarkPaid(ctx context.Context, id string) error {
	tag, err := config.DB.Exec(ctx,
		`UPDATE orders SET payment = true, updated_at = $1 WHERE id = $2`,
		time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) SetGatewayRef(ctx context.Context, id, ref string) error {
	tag, err := config.DB.Exec(ctx,
		`UPDATE orders SET gateway_ref = $1, updated_at = $2 WHERE id = $3`,
		ref, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*models.Order, error) {
	var o models.Order
	var itemsRaw, addressRaw []byte
	var method string
	err := row.Scan(
		&o.ID, &o.UserID, &itemsRaw, &o.Amount, &addressRaw,
		&o.Status, &method, &o.Payment, &o.GatewayRef,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.PaymentMethod = models.PaymentMethod(method)

	if len(itemsRaw) > 0 {
		if err := json.Unmarshal(itemsRaw, &o.Items); err != nil {
			return nil, fmt.Errorf("failed to decode order items: %w", err)
		}
	}
	if len(addressRaw) > 0 {
		if err := json.Unmarshal(addressRaw, &o.Address); err != nil {
			return nil, fmt.Errorf("failed to decode order address: %w", err)
		}
	}
	return &o, nil
}
