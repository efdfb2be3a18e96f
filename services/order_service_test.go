package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trends-shop/models"
)

type stubOrderStore struct {
	orders    map[string]*models.Order
	insertErr error
	statuses  []string
}

func newStubOrderStore() *stubOrderStore {
	return &stubOrderStore{orders: map[string]*models.Order{}}
}

func (s *stubOrderStore) Insert(_ context.Context, order *models.Order) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	copied := *order
	s.orders[order.ID] = &copied
	return nil
}

func (s *stubOrderStore) GetByID(_ context.Context, id string) (*models.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (s *stubOrderStore) ListByUser(_ context.Context, userID int) ([]models.Order, error) {
	out := []models.Order{}
	for _, order := range s.orders {
		if order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (s *stubOrderStore) ListAll(_ context.Context) ([]models.Order, error) {
	out := []models.Order{}
	for _, order := range s.orders {
		out = append(out, *order)
	}
	return out, nil
}

func (s *stubOrderStore) UpdateStatus(_ context.Context, id, status string) error {
	order, ok := s.orders[id]
	if !ok {
		return models.ErrOrderNotFound
	}
	order.Status = status
	s.statuses = append(s.statuses, status)
	return nil
}

func (s *stubOrderStore) MarkPaid(_ context.Context, id string) error {
	order, ok := s.orders[id]
	if !ok {
		return models.ErrOrderNotFound
	}
	order.Payment = true
	return nil
}

func (s *stubOrderStore) SetGatewayRef(_ context.Context, id, ref string) error {
	order, ok := s.orders[id]
	if !ok {
		return models.ErrOrderNotFound
	}
	order.GatewayRef = ref
	return nil
}

type stubCartStore struct {
	carts map[int]models.Cart
}

func newStubCartStore() *stubCartStore {
	return &stubCartStore{carts: map[int]models.Cart{}}
}

func (s *stubCartStore) GetCart(_ context.Context, userID int) (models.Cart, error) {
	cart, ok := s.carts[userID]
	if !ok {
		return models.NewCart(), nil
	}
	return cart.Clone(), nil
}

func (s *stubCartStore) SaveCart(_ context.Context, userID int, cart models.Cart) error {
	s.carts[userID] = cart.Clone()
	return nil
}

type stubCatalog struct {
	products []models.Product
	err      error
}

func (s *stubCatalog) List(_ context.Context) ([]models.Product, error) {
	return s.products, s.err
}

type stubCheckout struct {
	ref, url   string
	createErr  error
	paid       bool
	paidErr    error
	paidCalled bool
}

func (s *stubCheckout) CreateSession(_ context.Context, _ *models.Order, _ string) (string, string, error) {
	return s.ref, s.url, s.createErr
}

func (s *stubCheckout) SessionPaid(_ context.Context, _ string) (bool, error) {
	s.paidCalled = true
	return s.paid, s.paidErr
}

type stubWallet struct {
	created   WalletOrder
	createErr error
	paid      bool
	receipt   string
}

func (s *stubWallet) CreateOrder(_ context.Context, order *models.Order) (WalletOrder, error) {
	if s.createErr != nil {
		return WalletOrder{}, s.createErr
	}
	s.created = WalletOrder{ID: "rzp_order_1", Amount: int64(order.Amount * 100), Currency: "usd", Receipt: order.ID}
	return s.created, nil
}

func (s *stubWallet) OrderPaid(_ context.Context, _ string) (bool, string, error) {
	return s.paid, s.receipt, nil
}

func testAddress() models.ShippingAddress {
	return models.ShippingAddress{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Street:    "12 Analytical St",
		City:      "London",
		State:     "LDN",
		Pincode:   "400001",
		Country:   "UK",
		Phone:     "5550001234",
	}
}

func testCatalog() *stubCatalog {
	return &stubCatalog{products: []models.Product{
		{ID: "shirt-1", Name: "Oxford Shirt", Images: []string{"shirt.jpg"}, Price: 20, Category: "Men"},
		{ID: "pants-1", Name: "Chino Pants", Images: []string{"pants.jpg"}, Price: 35, Category: "Men"},
	}}
}

func newTestOrderService(orders *stubOrderStore, carts *stubCartStore, catalog *stubCatalog,
	checkout *stubCheckout, wallet *stubWallet) *OrderService {
	return NewOrderService(orders, carts, catalog, checkout, wallet, nil, 40)
}

func TestPlaceOrderCOD(t *testing.T) {
	orders := newStubOrderStore()
	carts := newStubCartStore()
	carts.carts[7] = models.Cart{"shirt-1": {"M": 2}}

	svc := newTestOrderService(orders, carts, testCatalog(), &stubCheckout{}, &stubWallet{})

	order, err := svc.PlaceOrderCOD(context.Background(), 7, testAddress())
	require.NoError(t, err)

	assert.Equal(t, models.MethodCOD, order.PaymentMethod)
	assert.Equal(t, models.StatusOrderPlaced, order.Status)
	assert.False(t, order.Payment)
	assert.Equal(t, 80.0, order.Amount, "subtotal 40 plus delivery fee 40")

	require.Len(t, order.Items, 1)
	assert.Equal(t, "Oxford Shirt", order.Items[0].Name)
	assert.Equal(t, "shirt.jpg", order.Items[0].Image)
	assert.Equal(t, "M", order.Items[0].Size)
	assert.Equal(t, 2, order.Items[0].Quantity)

	assert.Empty(t, carts.carts[7], "COD placement clears the cart immediately")
	assert.Len(t, orders.orders, 1)
}

func TestPlaceOrderItemOrderIsDeterministic(t *testing.T) {
	carts := newStubCartStore()
	carts.carts[7] = models.Cart{
		"shirt-1": {"M": 1, "L": 1},
		"pants-1": {"32": 1},
	}

	svc := newTestOrderService(newStubOrderStore(), carts, testCatalog(), &stubCheckout{}, &stubWallet{})

	order, err := svc.PlaceOrderCOD(context.Background(), 7, testAddress())
	require.NoError(t, err)

	require.Len(t, order.Items, 3)
	assert.Equal(t, "pants-1", order.Items[0].ProductID)
	assert.Equal(t, "L", order.Items[1].Size)
	assert.Equal(t, "M", order.Items[2].Size)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc := newTestOrderService(newStubOrderStore(), newStubCartStore(), testCatalog(), &stubCheckout{}, &stubWallet{})

	_, err := svc.PlaceOrderCOD(context.Background(), 7, testAddress())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderSkipsDeletedProducts(t *testing.T) {
	carts := newStubCartStore()
	carts.carts[7] = models.Cart{
		"shirt-1": {"M": 1},
		"gone-1":  {"S": 3},
	}

	svc := newTestOrderService(newStubOrderStore(), carts, testCatalog(), &stubCheckout{}, &stubWallet{})

	order, err := svc.PlaceOrderCOD(context.Background(), 7, testAddress())
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, "shirt-1", order.Items[0].ProductID)
	assert.Equal(t, 60.0, order.Amount)
}

func TestPlaceOrderOnlyDeletedProductsIsEmpty(t *testing.T) {
	carts := newStubCartStore()
	carts.carts[7] = models.Cart{"gone-1": {"S": 3}}

	svc := newTestOrderService(newStubOrderStore(), carts, testCatalog(), &stubCheckout{}, &stubWallet{})

	_, err := svc.PlaceOrderCOD(context.Background(), 7, testAddress())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderInvalidAddress(t *testing.T) {
	carts := newStubCartStore()
	carts.carts[7] = models.Cart{"shirt-1": {"M": 1}}

	svc := newTestOrderService(newStubOrderStore(), carts, testCatalog(), &stubCheckout{}, &stubWallet{})

	address := testAddress()
	address.Phone = ""

	_, err := svc.PlaceOrderCOD(context.Background(), 7, address)
	assert.ErrorIs(t, err, models.ErrInvalidAddress)
	assert.NotEmpty(t, carts.carts[7], "failed placement must not touch the cart")
}

func TestOrderSnapshotSurvivesPriceChange(t *testing.T) {
	orders := newStubOrderStore()
	carts := newStubCartStore()
	carts.carts[7] = models.Cart{"shirt-1": {"M": 2}}
	catalog := testCatalog()

	svc := newTestOrderService(orders, carts, catalog, &stubCheckout{}, &stubWallet{})

	order, err := svc.PlaceOrderCOD(context.Background(), 7, testAddress())
	require.NoError(t, err)

	catalog.products[0].Price = 999
	catalog.products[0].Name = "Renamed Shirt"

	stored, err := orders.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, 20.0, stored.Items[0].Price)
	assert.Equal(t, "Oxford Shirt", stored.Items[0].Name)
	assert.Equal(t, 80.0, stored.Amount)
}

func TestPlaceOrderStripe(t *testing.T) {
	orders := newStubOrderStore()
	carts := newStubCartStore()
	carts.carts[7] = models.Cart{"shirt-1": {"M": 2}}
	checkout := &stubCheckout{ref: "cs_test_1", url: "https://checkout.example/cs_test_1"}

	svc := newTestOrderService(orders, carts, testCatalog(), checkout, &stubWallet{})

	url, order, err := svc.PlaceOrderStripe(context.Background(), 7, testAddress(), "https://shop.example")
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.example/cs_test_1", url)
	assert.Equal(t, models.MethodStripe, order.PaymentMethod)
	assert.False(t, order.Payment)

	stored := orders.orders[order.ID]
	assert.Equal(t, "cs_test_1", stored.GatewayRef)
	assert.NotEmpty(t, carts.carts[7], "cart is only cleared after verified payment")
}

func TestVerifyStripePaid(t *testing.T) {
	orders := newStubOrderStore()
	carts := newStubCartStore()
	carts.carts[7] = models.Cart{"shirt-1": {"M": 2}}
	checkout := &stubCheckout{ref: "cs_test_1", url: "https://checkout.example/cs_test_1", paid: true}

	svc := newTestOrderService(orders, carts, testCatalog(), checkout, &stubWallet{})

	_, order, err := svc.PlaceOrderStripe(context.Background(), 7, testAddress(), "https://shop.example")
	require.NoError(t, err)

	paid, err := svc.VerifyStripe(context.Background(), 7, order.ID)
	require.NoError(t, err)
	assert.True(t, paid)

	assert.True(t, orders.orders[order.ID].Payment)
	assert.Empty(t, carts.carts[7])
}

func TestVerifyStripeUnpaidLeavesOrderAlone(t *testing.T) {
	orders := newStubOrderStore()
	carts := newStubCartStore()
	carts.carts[7] = models.Cart{"shirt-1": {"M": 2}}
	checkout := &stubCheckout{ref: "cs_test_1", url: "https://checkout.example/cs_test_1", paid: false}

	svc := newTestOrderService(orders, carts, testCatalog(), checkout, &stubWallet{})

	_, order, err := svc.PlaceOrderStripe(context.Background(), 7, testAddress(), "https://shop.example")
	require.NoError(t, err)

	paid, err := svc.VerifyStripe(context.Background(), 7, order.ID)
	require.NoError(t, err)
	assert.False(t, paid)

	assert.False(t, orders.orders[order.ID].Payment)
	assert.NotEmpty(t, carts.carts[7])
}

func TestVerifyStripeWrongUser(t *testing.T) {
	orders := newStubOrderStore()
	carts := newStubCartStore()
	carts.carts[7] = models.Cart{"shirt-1": {"M": 2}}
	checkout := &stubCheckout{ref: "cs_test_1", url: "https://checkout.example/cs_test_1", paid: true}

	svc := newTestOrderService(orders, carts, testCatalog(), checkout, &stubWallet{})

	_, order, err := svc.PlaceOrderStripe(context.Background(), 7, testAddress(), "https://shop.example")
	require.NoError(t, err)

	_, err = svc.VerifyStripe(context.Background(), 8, order.ID)
	assert.ErrorIs(t, err, models.ErrOrderNotFound)
}

func TestVerifyStripeAlreadyPaidSkipsGateway(t *testing.T) {
	orders := newStubOrderStore()
	carts := newStubCartStore()
	carts.carts[7] = models.Cart{"shirt-1": {"M": 2}}
	checkout := &stubCheckout{ref: "cs_test_1", url: "https://checkout.example/cs_test_1", paid: true}

	svc := newTestOrderService(orders, carts, testCatalog(), checkout, &stubWallet{})

	_, order, err := svc.PlaceOrderStripe(context.Background(), 7, testAddress(), "https://shop.example")
	require.NoError(t, err)

	_, err = svc.VerifyStripe(context.Background(), 7, order.ID)
	require.NoError(t, err)

	checkout.paidCalled = false
	paid, err := svc.VerifyStripe(context.Background(), 7, order.ID)
	require.NoError(t, err)
	assert.True(t, paid)
	assert.False(t, checkout.paidCalled)
}

func TestPlaceOrderRazorpay(t *testing.T) {
	orders := newStubOrderStore()
	carts := newStubCartStore()
	carts.carts[7] = models.Cart{"shirt-1": {"M": 2}}
	wallet := &stubWallet{}

	svc := newTestOrderService(orders, carts, testCatalog(), &stubCheckout{}, wallet)

	walletOrder, order, err := svc.PlaceOrderRazorpay(context.Background(), 7, testAddress())
	require.NoError(t, err)

	assert.Equal(t, models.MethodRazorpay, order.PaymentMethod)
	assert.Equal(t, order.ID, walletOrder.Receipt, "receipt carries our order id")
	assert.Equal(t, int64(8000), walletOrder.Amount)
	assert.Equal(t, "rzp_order_1", orders.orders[order.ID].GatewayRef)
	assert.NotEmpty(t, carts.carts[7])
}

func TestVerifyRazorpayPaid(t *testing.T) {
	orders := newStubOrderStore()
	carts := newStubCartStore()
	carts.carts[7] = models.Cart{"shirt-1": {"M": 2}}
	wallet := &stubWallet{}

	svc := newTestOrderService(orders, carts, testCatalog(), &stubCheckout{}, wallet)

	_, order, err := svc.PlaceOrderRazorpay(context.Background(), 7, testAddress())
	require.NoError(t, err)

	wallet.paid = true
	wallet.receipt = order.ID

	paid, err := svc.VerifyRazorpay(context.Background(), 7, "rzp_order_1")
	require.NoError(t, err)
	assert.True(t, paid)

	assert.True(t, orders.orders[order.ID].Payment)
	assert.Empty(t, carts.carts[7])
}

func TestVerifyRazorpayUnpaid(t *testing.T) {
	orders := newStubOrderStore()
	carts := newStubCartStore()
	carts.carts[7] = models.Cart{"shirt-1": {"M": 2}}
	wallet := &stubWallet{}

	svc := newTestOrderService(orders, carts, testCatalog(), &stubCheckout{}, wallet)

	_, order, err := svc.PlaceOrderRazorpay(context.Background(), 7, testAddress())
	require.NoError(t, err)

	wallet.paid = false

	paid, err := svc.VerifyRazorpay(context.Background(), 7, "rzp_order_1")
	require.NoError(t, err)
	assert.False(t, paid)
	assert.False(t, orders.orders[order.ID].Payment)
}

func TestUpdateStatus(t *testing.T) {
	orders := newStubOrderStore()
	carts := newStubCartStore()
	carts.carts[7] = models.Cart{"shirt-1": {"M": 1}}

	svc := newTestOrderService(orders, carts, testCatalog(), &stubCheckout{}, &stubWallet{})

	order, err := svc.PlaceOrderCOD(context.Background(), 7, testAddress())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(context.Background(), order.ID, models.StatusShipped))
	assert.Equal(t, models.StatusShipped, orders.orders[order.ID].Status)
}

func TestUpdateStatusAllowsRegression(t *testing.T) {
	orders := newStubOrderStore()
	carts := newStubCartStore()
	carts.carts[7] = models.Cart{"shirt-1": {"M": 1}}

	svc := newTestOrderService(orders, carts, testCatalog(), &stubCheckout{}, &stubWallet{})

	order, err := svc.PlaceOrderCOD(context.Background(), 7, testAddress())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(context.Background(), order.ID, models.StatusDelivered))
	require.NoError(t, svc.UpdateStatus(context.Background(), order.ID, models.StatusPacking))
	assert.Equal(t, models.StatusPacking, orders.orders[order.ID].Status)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	orders := newStubOrderStore()
	svc := newTestOrderService(orders, newStubCartStore(), testCatalog(), &stubCheckout{}, &stubWallet{})

	err := svc.UpdateStatus(context.Background(), "some-order", "Cancelled")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Empty(t, orders.statuses)
}

func TestPlaceOrderStripeGatewayFailure(t *testing.T) {
	orders := newStubOrderStore()
	carts := newStubCartStore()
	carts.carts[7] = models.Cart{"shirt-1": {"M": 2}}
	checkout := &stubCheckout{createErr: errors.New("gateway down")}

	svc := newTestOrderService(orders, carts, testCatalog(), checkout, &stubWallet{})

	_, _, err := svc.PlaceOrderStripe(context.Background(), 7, testAddress(), "https://shop.example")
	require.Error(t, err)
	assert.NotEmpty(t, carts.carts[7], "cart survives a failed checkout handoff")
}
