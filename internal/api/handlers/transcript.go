package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"meetscribe/internal/api/dto"
	"meetscribe/internal/api/errors"
	"meetscribe/internal/api/middleware"
	"meetscribe/internal/api/services"
	"meetscribe/internal/app/audio"
)

// TranscriptHandler handles the transcription flows and transcript CRUD
type TranscriptHandler struct {
	service services.TranscriptService
}

// NewTranscriptHandler creates a new transcript handler
func NewTranscriptHandler(service services.TranscriptService) *TranscriptHandler {
	return &TranscriptHandler{service: service}
}

// AnalyzeAudio handles POST /api/analyze-audio
//
// @Summary Transcribe an uploaded audio file
// @Description Accepts a multipart audio upload, transcribes it and stores the transcript
// @Tags transcripts
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file to transcribe"
// @Success 200 {object} dto.AnalysisResponse "Transcript and its new id"
// @Failure 400 {object} errors.APIError "Not an audio upload"
// @Failure 500 {object} errors.APIError "Gateway or storage fault"
// @Router /analyze-audio [post]
func (h *TranscriptHandler) AnalyzeAudio(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("Missing file upload"))
		return
	}

	// Reject non-audio uploads before touching the gateway or the store.
	contentType := fileHeader.Header.Get("Content-Type")
	if !audio.IsAudioMIMEType(contentType) {
		middleware.HandleError(c, errors.NewBadRequestError("Unsupported file type: please upload an audio file"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("Failed to open uploaded file"))
		return
	}
	defer file.Close()

	contents, err := io.ReadAll(file)
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError("Failed to read uploaded file"))
		return
	}

	response, err := h.service.AnalyzeUpload(c.Request.Context(), fileHeader.Filename, contents, contentType)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// DownloadFromYouTube handles POST /api/download-from-youtube
//
// @Summary Transcribe a YouTube video's audio
// @Description Downloads the audio track, transcribes it and stores the transcript; the temporary file is always removed
// @Tags transcripts
// @Accept json
// @Produce json
// @Param request body dto.YouTubeRequest true "Video URL and optional title"
// @Success 200 {object} dto.AnalysisResponse "Transcript and its new id"
// @Failure 400 {object} errors.APIError "Invalid source URL"
// @Failure 500 {object} errors.APIError "Downloader, gateway or storage fault"
// @Router /download-from-youtube [post]
func (h *TranscriptHandler) DownloadFromYouTube(c *gin.Context) {
	var req dto.YouTubeRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.AnalyzeYouTube(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// List handles GET /api/transcripts
//
// @Summary List stored transcripts
// @Description Returns every transcript, newest first
// @Tags transcripts
// @Produce json
// @Success 200 {array} dto.TranscriptResponse
// @Failure 500 {object} errors.APIError "Storage fault"
// @Router /transcripts [get]
func (h *TranscriptHandler) List(c *gin.Context) {
	response, err := h.service.List(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /api/transcripts/:id
//
// @Summary Delete a transcript
// @Tags transcripts
// @Produce json
// @Param id path int true "Transcript ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} errors.APIError "Unknown id"
// @Failure 500 {object} errors.APIError "Storage fault"
// @Router /transcripts/{id} [delete]
func (h *TranscriptHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("Invalid transcript ID"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{Message: "Transcript deleted successfully"})
}
