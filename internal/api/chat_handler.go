package api

import (
	"fmt"
	"net/http"
	"trainio/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler holds the chat service dependency.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// --- DTOs ---

type SendMessageRequest struct {
	ReceiverID string `json:"receiverId" binding:"required"`
	Text       string `json:"text" binding:"required"`
}

// --- Handler Methods ---

// GetContacts lists everyone except the requesting user.
// ?q= filters by case-insensitive name substring.
func (h *ChatHandler) GetContacts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	contacts, err := h.chatService.Contacts(c.Request.Context(), userID, c.Query("q"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not load contacts")
		return
	}
	c.JSON(http.StatusOK, MapUsersToResponse(contacts))
}

// GetConversation returns the messages between the requesting user and
// the user in the path, oldest first.
func (h *ChatHandler) GetConversation(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	msgs, err := h.chatService.Conversation(c.Request.Context(), userID, c.Param("userId"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not load conversation")
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// SendMessage appends a message from the requesting user.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	msg, err := h.chatService.SendMessage(c.Request.Context(), userID, req.ReceiverID, req.Text)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, msg)
}
