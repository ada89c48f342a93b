package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meetscribe/internal/api/dto"
	"meetscribe/internal/api/middleware"
	"meetscribe/internal/api/services"
)

// IssueHandler files GitHub issues on the caller's behalf
type IssueHandler struct {
	service services.IssueService
}

// NewIssueHandler creates a new issue handler
func NewIssueHandler(service services.IssueService) *IssueHandler {
	return &IssueHandler{service: service}
}

// Create handles POST /api/github/issue
//
// @Summary File a GitHub issue
// @Description Creates an issue in the given repository using the caller's token
// @Tags issues
// @Accept json
// @Produce json
// @Param request body dto.IssueRequest true "Token, repository and issue content"
// @Success 200 {object} dto.IssueResponse
// @Failure 400 {object} errors.APIError "Repository not found"
// @Failure 401 {object} errors.APIError "Bad token"
// @Failure 500 {object} errors.APIError "GitHub unreachable"
// @Router /github/issue [post]
func (h *IssueHandler) Create(c *gin.Context) {
	var req dto.IssueRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
