package routes

import (
	"github.com/gin-gonic/gin"

	"meetscribe/internal/api/handlers"
	"meetscribe/internal/api/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranscriptService services.TranscriptService
	ChatService       services.ChatService
	IssueService      services.IssueService
}

// RegisterRoutes registers all /api routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	transcriptHandler := handlers.NewTranscriptHandler(container.TranscriptService)
	router.POST("/analyze-audio", transcriptHandler.AnalyzeAudio)
	router.POST("/download-from-youtube", transcriptHandler.DownloadFromYouTube)
	router.GET("/transcripts", transcriptHandler.List)
	router.DELETE("/transcripts/:id", transcriptHandler.Delete)

	chatHandler := handlers.NewChatHandler(container.ChatService)
	router.POST("/chat", chatHandler.Chat)

	if container.IssueService != nil {
		issueHandler := handlers.NewIssueHandler(container.IssueService)
		router.POST("/github/issue", issueHandler.Create)
	}
}
