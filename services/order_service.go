package services

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"trends-shop/models"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrInvalidStatus = errors.New("invalid order status")
)

type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	ListByUser(ctx context.Context, userID int) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	MarkPaid(ctx context.Context, id string) error
	SetGatewayRef(ctx context.Context, id, ref string) error
}

type ProductCatalog interface {
	List(ctx context.Context) ([]models.Product, error)
}

// CheckoutGateway is the hosted-checkout provider: create a session the
// customer is redirected to, then ask whether it was paid.
type CheckoutGateway interface {
	CreateSession(ctx context.Context, order *models.Order, origin string) (ref, url string, err error)
	SessionPaid(ctx context.Context, ref string) (bool, error)
}

// WalletOrder is the gateway-side payment order handed to the client widget.
type WalletOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// WalletGateway is the client-callback provider: create a payment order
// carrying our order id as receipt, then confirm it server-side.
type WalletGateway interface {
	CreateOrder(ctx context.Context, order *models.Order) (WalletOrder, error)
	OrderPaid(ctx context.Context, gatewayOrderID string) (paid bool, receipt string, err error)
}

type OrderService struct {
	orders      OrderStore
	carts       CartStore
	catalog     ProductCatalog
	checkout    CheckoutGateway
	wallet      WalletGateway
	mailer      *EmailService
	deliveryFee float64
}

func NewOrderService(orders OrderStore, carts CartStore, catalog ProductCatalog,
	checkout CheckoutGateway, wallet WalletGateway, mailer *EmailService, deliveryFee float64) *OrderService {
	return &OrderService{
		orders:      orders,
		carts:       carts,
		catalog:     catalog,
		checkout:    checkout,
		wallet:      wallet,
		mailer:      mailer,
		deliveryFee: deliveryFee,
	}
}

// assemble flattens the user's persisted cart into an order: one line item
// per (product, size) entry, each a value copy of the product's current
// name, image and price. The cart only ever holds positive quantities, and
// entries whose product has been deleted from the catalog are skipped.
// Total = subtotal + flat delivery fee, fixed at creation and never
// recomputed.
func (s *OrderService) assemble(ctx context.Context, userID int, address models.ShippingAddress) (*models.Order, error) {
	if err := address.Validate(); err != nil {
		return nil, err
	}

	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	productIDs := make([]string, 0, len(cart))
	for productID := range cart {
		productIDs = append(productIDs, productID)
	}
	sort.Strings(productIDs)

	items := []models.OrderItem{}
	subtotal := 0.0
	for _, productID := range productIDs {
		product, ok := byID[productID]
		if !ok {
			continue
		}

		sizes := make([]string, 0, len(cart[productID]))
		for size := range cart[productID] {
			sizes = append(sizes, size)
		}
		sort.Strings(sizes)

		for _, size := range sizes {
			qty := cart[productID][size]
			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				Image:     product.FirstImage(),
				Price:     product.Price,
				Size:      size,
				Quantity:  qty,
			})
			subtotal += product.Price * float64(qty)
		}
	}

	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	now := time.Now()
	return &models.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     items,
		Amount:    subtotal + s.deliveryFee,
		Address:   address,
		Status:    models.StatusOrderPlaced,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// PlaceOrderCOD persists the order unpaid and clears the cart in one step.
// Payment stays false: it is collected on delivery.
func (s *OrderService) PlaceOrderCOD(ctx context.Context, userID int, address models.ShippingAddress) (*models.Order, error) {
	order, err := s.assemble(ctx, userID, address)
	if err != nil {
		return nil, err
	}
	order.PaymentMethod = models.MethodCOD

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}
	if err := s.carts.SaveCart(ctx, userID, models.NewCart()); err != nil {
		return nil, err
	}

	s.sendConfirmation(order)
	return order, nil
}

// PlaceOrderStripe persists the order unpaid and returns the hosted
// checkout URL. If the gateway call fails the order stays behind
// unconfirmed; there is no automatic retry or cleanup.
func (s *OrderService) PlaceOrderStripe(ctx context.Context, userID int, address models.ShippingAddress, origin string) (string, *models.Order, error) {
	order, err := s.assemble(ctx, userID, address)
	if err != nil {
		return "", nil, err
	}
	order.PaymentMethod = models.MethodStripe

	if err := s.orders.Insert(ctx, order); err != nil {
		return "", nil, err
	}

	ref, url, err := s.checkout.CreateSession(ctx, order, origin)
	if err != nil {
		return "", nil, err
	}
	if err := s.orders.SetGatewayRef(ctx, order.ID, ref); err != nil {
		return "", nil, err
	}
	order.GatewayRef = ref
	return url, order, nil
}

// VerifyStripe confirms a checkout session server-side. Only a session the
// gateway reports as paid flips the payment flag and clears the cart; any
// other outcome leaves the order exactly as it was.
func (s *OrderService) VerifyStripe(ctx context.Context, userID int, orderID string) (bool, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return false, err
	}
	if order.UserID != userID {
		return false, models.ErrOrderNotFound
	}
	if order.Payment {
		return true, nil
	}

	paid, err := s.checkout.SessionPaid(ctx, order.GatewayRef)
	if err != nil {
		return false, err
	}
	if !paid {
		return false, nil
	}

	return true, s.confirmPayment(ctx, order)
}

// PlaceOrderRazorpay persists the order unpaid and creates the gateway-side
// payment order the client widget completes. Our order id travels as the
// receipt.
func (s *OrderService) PlaceOrderRazorpay(ctx context.Context, userID int, address models.ShippingAddress) (WalletOrder, *models.Order, error) {
	order, err := s.assemble(ctx, userID, address)
	if err != nil {
		return WalletOrder{}, nil, err
	}
	order.PaymentMethod = models.MethodRazorpay

	if err := s.orders.Insert(ctx, order); err != nil {
		return WalletOrder{}, nil, err
	}

	walletOrder, err := s.wallet.CreateOrder(ctx, order)
	if err != nil {
		return WalletOrder{}, nil, err
	}
	if err := s.orders.SetGatewayRef(ctx, order.ID, walletOrder.ID); err != nil {
		return WalletOrder{}, nil, err
	}
	order.GatewayRef = walletOrder.ID
	return walletOrder, order, nil
}

// VerifyRazorpay fetches the gateway order and confirms ours via the
// receipt it carries. A not-paid gateway order changes nothing.
func (s *OrderService) VerifyRazorpay(ctx context.Context, userID int, gatewayOrderID string) (bool, error) {
	paid, receipt, err := s.wallet.OrderPaid(ctx, gatewayOrderID)
	if err != nil {
		return false, err
	}
	if !paid {
		return false, nil
	}

	order, err := s.orders.GetByID(ctx, receipt)
	if err != nil {
		return false, err
	}
	if order.UserID != userID {
		return false, models.ErrOrderNotFound
	}
	if order.Payment {
		return true, nil
	}

	return true, s.confirmPayment(ctx, order)
}

func (s *OrderService) confirmPayment(ctx context.Context, order *models.Order) error {
	if err := s.orders.MarkPaid(ctx, order.ID); err != nil {
		return err
	}
	if err := s.carts.SaveCart(ctx, order.UserID, models.NewCart()); err != nil {
		return err
	}
	order.Payment = true
	s.sendConfirmation(order)
	return nil
}

func (s *OrderService) UserOrders(ctx context.Context, userID int) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *OrderService) AllOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.ListAll(ctx)
}

// UpdateStatus assigns any member of the fulfillment enumeration. Jumps and
// regressions are accepted; only membership is checked.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) error {
	if !models.IsValidStatus(status) {
		return ErrInvalidStatus
	}
	return s.orders.UpdateStatus(ctx, orderID, status)
}

func (s *OrderService) sendConfirmation(order *models.Order) {
	if s.mailer == nil {
		return
	}
	if err := s.mailer.SendOrderConfirmation(order.Address.Email, order.ID, order.Amount); err != nil {
		log.Printf("Failed to send order confirmation for %s: %v", order.ID, err)
	}
}
