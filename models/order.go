package models

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidAddress = errors.New("invalid shipping address")

// PaymentMethod tags how an order is paid. One dispatch handler exists per
// method; adding a provider means adding a tag and a handler, not growing a
// conditional ladder.
type PaymentMethod string

const (
	MethodCOD      PaymentMethod = "COD"
	MethodStripe   PaymentMethod = "Stripe"
	MethodRazorpay PaymentMethod = "Razorpay"
)

// Fulfillment statuses, advanced by admin action only. Any member may be
// assigned at any time; ordering is not enforced.
const (
	StatusOrderPlaced    = "Order Placed"
	StatusPacking        = "Packing"
	StatusShipped        = "Shipped"
	StatusOutForDelivery = "Out for delivery"
	StatusDelivered      = "Delivered"
)

var OrderStatuses = []string{
	StatusOrderPlaced,
	StatusPacking,
	StatusShipped,
	StatusOutForDelivery,
	StatusDelivered,
}

func IsValidStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// OrderItem is a frozen snapshot of one cart entry at order-creation time.
// Copied by value from the catalog so later product edits never alter
// historical orders.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
}

type ShippingAddress struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// Validate reports the first blank required field.
func (a ShippingAddress) Validate() error {
	fields := []struct {
		label string
		value string
	}{
		{"first name", a.FirstName},
		{"last name", a.LastName},
		{"email", a.Email},
		{"street", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"pincode", a.Pincode},
		{"country", a.Country},
		{"phone", a.Phone},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidAddress, f.label)
		}
	}
	return nil
}

type Order struct {
	ID            string          `json:"_id"`
	UserID        int             `json:"userId"`
	Items         []OrderItem     `json:"items"`
	Amount        float64         `json:"amount"`
	Address       ShippingAddress `json:"address"`
	Status        string          `json:"status"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Payment       bool            `json:"payment"`
	GatewayRef    string          `json:"-"`
	CreatedAt     time.Time       `json:"date"`
	UpdatedAt     time.Time       `json:"-"`
}
