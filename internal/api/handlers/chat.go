package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meetscribe/internal/api/dto"
	"meetscribe/internal/api/middleware"
	"meetscribe/internal/api/services"
)

// ChatHandler handles conversational Q&A over transcripts
type ChatHandler struct {
	service services.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(service services.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Chat handles POST /api/chat
//
// @Summary Ask a question about one or more transcripts
// @Description Sends the transcripts and question to the AI service and returns the answer rendered as HTML
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Transcript context and question"
// @Success 200 {object} dto.ChatResponse
// @Failure 422 {object} errors.APIError "No transcript context"
// @Failure 500 {object} errors.APIError "Gateway fault"
// @Router /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.Answer(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
