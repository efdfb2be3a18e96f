package services

import (
	"context"

	"trends-shop/models"
)

// CartStore is the persisted cart document, keyed by user. Reads and writes
// whole documents; there is no optimistic concurrency token, so two sessions
// of the same account overwrite each other last-write-wins.
type CartStore interface {
	GetCart(ctx context.Context, userID int) (models.Cart, error)
	SaveCart(ctx context.Context, userID int, cart models.Cart) error
}

type CartService struct {
	store CartStore
}

func NewCartService(store CartStore) *CartService {
	return &CartService{store: store}
}

// Get returns the server-held cart. At login the client replaces its local
// cart with this one.
func (s *CartService) Get(ctx context.Context, userID int) (models.Cart, error) {
	return s.store.GetCart(ctx, userID)
}

// Add increments (productID, size) on the persisted cart and writes the
// whole document back.
func (s *CartService) Add(ctx context.Context, userID int, productID, size string) (models.Cart, error) {
	cart, err := s.store.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := cart.Add(productID, size); err != nil {
		return nil, err
	}
	if err := s.store.SaveCart(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Update sets the quantity for (productID, size); a quantity <= 0 removes
// the entry.
func (s *CartService) Update(ctx context.Context, userID int, productID, size string, quantity int) (models.Cart, error) {
	cart, err := s.store.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := cart.SetQuantity(productID, size, quantity); err != nil {
		return nil, err
	}
	if err := s.store.SaveCart(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
