package repositories

import (
	"context"
	"time"

	"trends-shop/config"
)

type NewsletterRepository struct{}

func NewNewsletterRepository() *NewsletterRepository {
	return &NewsletterRepository{}
}

// Subscribe stores the address. Returns false when it was already
// subscribed.
func (r *NewsletterRepository) Subscribe(ctx context.Context, email string) (bool, error) {
	tag, err := config.DB.Exec(ctx,
		`INSERT INTO newsletter_subscribers (email, created_at) VALUES ($1, $2)
		 ON CONFLICT (email) DO NOTHING`,
		email, time.Now())
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
