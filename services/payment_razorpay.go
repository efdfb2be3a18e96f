package services

import (
	"context"
	"fmt"
	"strings"

	razorpay "github.com/razorpay/razorpay-go"

	"trends-shop/models"
)

// razorpayGateway implements WalletGateway on Razorpay payment orders. The
// SDK carries no context support; confirmation happens by fetching the
// gateway order and checking its status server-side.
type razorpayGateway struct {
	client   *razorpay.Client
	currency string
}

func NewRazorpayGateway(keyID, keySecret, currency string) WalletGateway {
	return &razorpayGateway{
		client:   razorpay.NewClient(keyID, keySecret),
		currency: strings.ToUpper(currency),
	}
}

func (g *razorpayGateway) CreateOrder(_ context.Context, order *models.Order) (WalletOrder, error) {
	amount := toSubunits(order.Amount)
	data := map[string]interface{}{
		"amount":   amount,
		"currency": g.currency,
		"receipt":  order.ID,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return WalletOrder{}, fmt.Errorf("failed to create payment order: %w", err)
	}

	id, _ := body["id"].(string)
	return WalletOrder{
		ID:       id,
		Amount:   amount,
		Currency: g.currency,
		Receipt:  order.ID,
	}, nil
}

func (g *razorpayGateway) OrderPaid(_ context.Context, gatewayOrderID string) (bool, string, error) {
	body, err := g.client.Order.Fetch(gatewayOrderID, nil, nil)
	if err != nil {
		return false, "", fmt.Errorf("failed to fetch payment order: %w", err)
	}

	status, _ := body["status"].(string)
	receipt, _ := body["receipt"].(string)
	return status == "paid", receipt, nil
}
