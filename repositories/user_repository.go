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

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now()
	query := `
		INSERT INTO users (name, email, password, cart_data, created_at, updated_at)
		VALUES ($1, $2, $3, '{}'::jsonb, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := config.DB.QueryRow(ctx, query,
		user.Name, user.Email, user.Password, now, now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return err
	}
	user.CartData = models.NewCart()
	return nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int
	err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE email = $1`, email).Scan(&count)
	return count > 0, err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getBy(ctx, "email = $1", email)
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	return r.getBy(ctx, "id = $1", id)
}

func (r *UserRepository) getBy(ctx context.Context, where string, arg interface{}) (*models.User, error) {
	query := `SELECT id, name, email, password, cart_data, created_at, updated_at FROM users WHERE ` + where

	var u models.User
	var cartRaw []byte
	err := config.DB.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &cartRaw, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	u.CartData = models.NewCart()
	if len(cartRaw) > 0 {
		if err := json.Unmarshal(cartRaw, &u.CartData); err != nil {
			return nil, fmt.Errorf("failed to decode cart data: %w", err)
		}
	}
	return &u, nil
}

// GetCart returns the persisted cart document for the user.
func (r *UserRepository) GetCart(ctx context.Context, userID int) (models.Cart, error) {
	var cartRaw []byte
	err := config.DB.QueryRow(ctx, `SELECT cart_data FROM users WHERE id = $1`, userID).Scan(&cartRaw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	cart := models.NewCart()
	if len(cartRaw) > 0 {
		if err := json.Unmarshal(cartRaw, &cart); err != nil {
			return nil, fmt.Errorf("failed to decode cart data: %w", err)
		}
	}
	return cart, nil
}

// SaveCart overwrites the whole cart document. No version token: concurrent
// writers are last-write-wins.
func (r *UserRepository) SaveCart(ctx context.Context, userID int, cart models.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart data: %w", err)
	}

	tag, err := config.DB.Exec(ctx,
		`UPDATE users SET cart_data = $1, updated_at = $2 WHERE id = $3`,
		raw, time.Now(), userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrUserNotFound
	}
	return nil
}
