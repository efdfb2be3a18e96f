package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"trends-shop/models"
	"trends-shop/services"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// Get godoc
// @Summary Get user cart
// @Description Get the persisted cart for the authenticated user
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/get [post]
func (ctrl *CartController) Get(c *gin.Context) {
	userID := c.GetInt("user_id")

	cart, err := ctrl.carts.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "cartData": cart})
}

// Add godoc
// @Summary Add to cart
// @Description Increment the quantity for a product and size by one
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartRequest true "Add Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/add [post]
func (ctrl *CartController) Add(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.AddCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	cart, err := ctrl.carts.Add(c.Request.Context(), userID, req.ItemID, req.Size)
	if err != nil {
		ctrl.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Added to cart", "cartData": cart})
}

// Update godoc
// @Summary Update cart entry
// @Description Set the quantity for a product and size; zero removes the entry
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateCartRequest true "Update Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/update [post]
func (ctrl *CartController) Update(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	cart, err := ctrl.carts.Update(c.Request.Context(), userID, req.ItemID, req.Size, req.Quantity)
	if err != nil {
		ctrl.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart updated", "cartData": cart})
}

func (ctrl *CartController) respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrSizeRequired), errors.Is(err, models.ErrMissingCartKey):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, models.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update cart"})
	}
}
