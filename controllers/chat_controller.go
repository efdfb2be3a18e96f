package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trends-shop/models"
	"trends-shop/services"
)

type ChatController struct {
	chatbot *services.ChatbotService
}

func NewChatController(chatbot *services.ChatbotService) *ChatController {
	return &ChatController{chatbot: chatbot}
}

// Chat godoc
// @Summary Shopping assistant
// @Description Keyword-matched canned replies with product recommendations
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Chat Request"
// @Success 200 {object} models.Response
// @Router /chat [post]
func (ctrl *ChatController) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	reply, err := ctrl.chatbot.Reply(c.Request.Context(), req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Assistant unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reply": reply})
}
