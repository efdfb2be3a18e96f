package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trends-shop/models"
	"trends-shop/services"
)

type NewsletterController struct {
	newsletter *services.NewsletterService
}

func NewNewsletterController(newsletter *services.NewsletterService) *NewsletterController {
	return &NewsletterController{newsletter: newsletter}
}

// Subscribe godoc
// @Summary Subscribe to newsletter
// @Description Store the address and send a welcome mail on first signup
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param request body models.NewsletterRequest true "Subscribe Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /newsletter/subscribe [post]
func (ctrl *NewsletterController) Subscribe(c *gin.Context) {
	var req models.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "A valid email is required"})
		return
	}

	created, err := ctrl.newsletter.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Subscription failed"})
		return
	}

	message := "Subscribed successfully"
	if !created {
		message = "You are already subscribed"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}
