package services

import (
	"context"
	"fmt"
	"math"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"

	"trends-shop/models"
)

// stripeGateway implements CheckoutGateway on Stripe hosted checkout
// sessions.
type stripeGateway struct {
	currency string
}

func NewStripeGateway(apiKey, currency string) CheckoutGateway {
	stripe.Key = apiKey
	return &stripeGateway{currency: currency}
}

func (g *stripeGateway) CreateSession(ctx context.Context, order *models.Order, origin string) (string, string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(order.Items)+1)
	subtotal := 0.0
	for _, item := range order.Items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(g.currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(toSubunits(item.Price)),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
		subtotal += item.Price * float64(item.Quantity)
	}

	if fee := order.Amount - subtotal; fee > 0 {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(g.currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String("Delivery Charges"),
				},
				UnitAmount: stripe.Int64(toSubunits(fee)),
			},
			Quantity: stripe.Int64(1),
		})
	}

	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(fmt.Sprintf("%s/verify?success=true&orderId=%s", origin, order.ID)),
		CancelURL:  stripe.String(fmt.Sprintf("%s/verify?success=false&orderId=%s", origin, order.ID)),
		LineItems:  lineItems,
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return "", "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return sess.ID, sess.URL, nil
}

func (g *stripeGateway) SessionPaid(ctx context.Context, ref string) (bool, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := session.Get(ref, params)
	if err != nil {
		return false, fmt.Errorf("failed to retrieve checkout session: %w", err)
	}
	return sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid, nil
}

// toSubunits converts a major-unit price to the gateway's integer subunits.
func toSubunits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
