package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"trends-shop/models"
	"trends-shop/services"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// Place godoc
// @Summary Place order (cash on delivery)
// @Description Assemble the cart into an order, payment collected on delivery
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.PlaceOrderRequest true "Order Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /order/place [post]
func (ctrl *OrderController) Place(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	order, err := ctrl.orders.PlaceOrderCOD(c.Request.Context(), userID, req.Address)
	if err != nil {
		ctrl.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Order Placed", "order": order})
}

// PlaceStripe godoc
// @Summary Place order via Stripe
// @Description Assemble the cart into an order and return the hosted checkout URL
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.PlaceOrderRequest true "Order Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /order/stripe [post]
func (ctrl *OrderController) PlaceStripe(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	url, _, err := ctrl.orders.PlaceOrderStripe(c.Request.Context(), userID, req.Address, requestOrigin(c))
	if err != nil {
		ctrl.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "session_url": url})
}

// PlaceRazorpay godoc
// @Summary Place order via Razorpay
// @Description Assemble the cart into an order and create the gateway payment order
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.PlaceOrderRequest true "Order Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /order/razorpay [post]
func (ctrl *OrderController) PlaceRazorpay(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	walletOrder, _, err := ctrl.orders.PlaceOrderRazorpay(c.Request.Context(), userID, req.Address)
	if err != nil {
		ctrl.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": walletOrder})
}

// VerifyStripe godoc
// @Summary Verify Stripe payment
// @Description Confirm the checkout session server-side; a paid session flips the payment flag and clears the cart
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.VerifyStripeRequest true "Verify Request"
// @Success 200 {object} models.Response
// @Router /order/verifyStripe [post]
func (ctrl *OrderController) VerifyStripe(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.VerifyStripeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	paid, err := ctrl.orders.VerifyStripe(c.Request.Context(), userID, req.OrderID)
	if err != nil {
		ctrl.respondOrderError(c, err)
		return
	}
	if !paid {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Payment not completed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment confirmed"})
}

// VerifyRazorpay godoc
// @Summary Verify Razorpay payment
// @Description Confirm the gateway payment order server-side via its receipt
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.VerifyRazorpayRequest true "Verify Request"
// @Success 200 {object} models.Response
// @Router /order/verifyRazorpay [post]
func (ctrl *OrderController) VerifyRazorpay(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.VerifyRazorpayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	paid, err := ctrl.orders.VerifyRazorpay(c.Request.Context(), userID, req.RazorpayOrderID)
	if err != nil {
		ctrl.respondOrderError(c, err)
		return
	}
	if !paid {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Payment not completed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment confirmed"})
}

// UserOrders godoc
// @Summary List user orders
// @Description List the authenticated user's orders, newest first
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /order/userorders [post]
func (ctrl *OrderController) UserOrders(c *gin.Context) {
	userID := c.GetInt("user_id")

	orders, err := ctrl.orders.UserOrders(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

// AllOrders godoc
// @Summary List all orders
// @Description List every order across users (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /order/list [post]
func (ctrl *OrderController) AllOrders(c *gin.Context) {
	orders, err := ctrl.orders.AllOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

// UpdateStatus godoc
// @Summary Update order status
// @Description Assign any fulfillment status to an order (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateStatusRequest true "Status Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /order/status [post]
func (ctrl *OrderController) UpdateStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if err := ctrl.orders.UpdateStatus(c.Request.Context(), req.OrderID, req.Status); err != nil {
		ctrl.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status updated"})
}

func (ctrl *OrderController) respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidAddress),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, models.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
	case errors.Is(err, models.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Operation failed"})
	}
}

func requestOrigin(c *gin.Context) string {
	if origin := c.GetHeader("Origin"); origin != "" {
		return origin
	}
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s", scheme, c.Request.Host)
}
