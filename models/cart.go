package models

import "errors"

var (
	ErrSizeRequired   = errors.New("product size is required")
	ErrMissingCartKey = errors.New("product id and size are required")
)

// Cart maps a product id to its per-size quantities. All mutation goes
// through Add and SetQuantity, which never leave behind an empty inner map
// or an entry with quantity <= 0.
type Cart map[string]map[string]int

func NewCart() Cart {
	return Cart{}
}

// Add increments the quantity for (productID, size) by one.
func (c Cart) Add(productID, size string) error {
	if productID == "" {
		return ErrMissingCartKey
	}
	if size == "" {
		return ErrSizeRequired
	}

	sizes, ok := c[productID]
	if !ok {
		sizes = map[string]int{}
		c[productID] = sizes
	}
	sizes[size]++
	return nil
}

// SetQuantity sets the quantity for (productID, size). A quantity <= 0
// removes the entry, and removes the product altogether once its last size
// is gone.
func (c Cart) SetQuantity(productID, size string, quantity int) error {
	if productID == "" || size == "" {
		return ErrMissingCartKey
	}

	if quantity <= 0 {
		if sizes, ok := c[productID]; ok {
			delete(sizes, size)
			if len(sizes) == 0 {
				delete(c, productID)
			}
		}
		return nil
	}

	sizes, ok := c[productID]
	if !ok {
		sizes = map[string]int{}
		c[productID] = sizes
	}
	sizes[size] = quantity
	return nil
}

// Count returns the total number of items across all products and sizes.
func (c Cart) Count() int {
	total := 0
	for _, sizes := range c {
		for _, qty := range sizes {
			total += qty
		}
	}
	return total
}

// Amount totals quantity times current price for every entry. Products
// missing from the lookup (deleted from the catalog) are skipped rather
// than failing the whole computation.
func (c Cart) Amount(prices map[string]float64) float64 {
	total := 0.0
	for productID, sizes := range c {
		price, ok := prices[productID]
		if !ok {
			continue
		}
		for _, qty := range sizes {
			total += price * float64(qty)
		}
	}
	return total
}

// Clone returns a deep copy so callers can mutate without aliasing the
// persisted document.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	for productID, sizes := range c {
		inner := make(map[string]int, len(sizes))
		for size, qty := range sizes {
			inner[size] = qty
		}
		out[productID] = inner
	}
	return out
}
