package models

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AddCartRequest struct {
	ItemID string `json:"itemId"`
	Size   string `json:"size"`
}

type UpdateCartRequest struct {
	ItemID   string `json:"itemId"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

type PlaceOrderRequest struct {
	Address ShippingAddress `json:"address"`
}

type VerifyStripeRequest struct {
	OrderID string `json:"orderId" binding:"required"`
}

type VerifyRazorpayRequest struct {
	RazorpayOrderID string `json:"razorpay_order_id" binding:"required"`
}

type UpdateStatusRequest struct {
	OrderID string `json:"orderId" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

type SingleProductRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type RemoveProductRequest struct {
	ID string `json:"id" binding:"required"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type NewsletterRequest struct {
	Email string `json:"email" binding:"required,email"`
}
