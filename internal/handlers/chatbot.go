package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/flowboard/flowboard-api/internal/dto"
	"github.com/flowboard/flowboard-api/internal/middleware"
	"github.com/flowboard/flowboard-api/internal/response"
	"github.com/flowboard/flowboard-api/internal/services"
)

type ChatbotHandler struct {
	chatbotService *services.ChatbotService
}

func NewChatbotHandler(chatbotService *services.ChatbotService) *ChatbotHandler {
	return &ChatbotHandler{chatbotService: chatbotService}
}

type ChatMessageRequest struct {
	Message string                 `json:"message" binding:"required"`
	Context map[string]interface{} `json:"context"`
}

// SendMessage forwards a message to the chatbot for the authenticated user.
// Upstream failures are answered with a fixed apology, never an error.
//
// @Summary   Send chatbot message
// @Tags      Chatbot
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      ChatMessageRequest  true  "Message"
// @Success   200   {object}  response.Envelope{data=dto.ChatReplyDTO}
// @Failure   401   {object}  response.Envelope
// @Router    /api/chatbot/message [post]
func (h *ChatbotHandler) SendMessage(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	reply, err := h.chatbotService.SendMessage(c.Request.Context(), userID, req.Message, req.Context)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, dto.ChatReplyDTO{Response: reply})
}

// GetHistory returns a user's exchanges, newest first
//
// @Summary  Chat history
// @Tags     Chatbot
// @Produce  json
// @Param    userId  path      string  true  "User ID"
// @Success  200     {object}  response.Envelope{data=[]dto.ChatMessageDTO}
// @Failure  400     {object}  response.Envelope
// @Router   /api/chatbot/history/{userId} [get]
func (h *ChatbotHandler) GetHistory(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	messages, err := h.chatbotService.GetHistory(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, dto.ToChatMessageDTOs(messages))
}
