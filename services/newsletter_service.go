package services

import (
	"context"
	"log"
)

type NewsletterStore interface {
	Subscribe(ctx context.Context, email string) (bool, error)
}

type NewsletterService struct {
	store  NewsletterStore
	mailer *EmailService
}

func NewNewsletterService(store NewsletterStore, mailer *EmailService) *NewsletterService {
	return &NewsletterService{store: store, mailer: mailer}
}

// Subscribe records the address and sends a welcome mail on first signup.
// Returns false for an address that was already subscribed.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (bool, error) {
	created, err := s.store.Subscribe(ctx, email)
	if err != nil {
		return false, err
	}

	if created && s.mailer != nil {
		if err := s.mailer.SendNewsletterWelcome(email); err != nil {
			log.Printf("Failed to send newsletter welcome to %s: %v", email, err)
		}
	}
	return created, nil
}
