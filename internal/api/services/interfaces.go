package services

import (
	"context"

	"meetscribe/internal/api/dto"
)

// TranscriptService covers the transcription flows and transcript CRUD.
type TranscriptService interface {
	// AnalyzeUpload transcribes uploaded audio bytes and persists the result.
	AnalyzeUpload(ctx context.Context, title string, audio []byte, mimeType string) (*dto.AnalysisResponse, error)

	// AnalyzeYouTube downloads a video's audio, transcribes it and persists
	// the result. The transient artifact is removed on every exit path.
	AnalyzeYouTube(ctx context.Context, req *dto.YouTubeRequest) (*dto.AnalysisResponse, error)

	// List returns all stored transcripts, newest first.
	List(ctx context.Context) ([]dto.TranscriptResponse, error)

	// Delete removes a transcript by id.
	Delete(ctx context.Context, id int64) error
}

// ChatService answers questions over stored or inline transcripts.
type ChatService interface {
	Answer(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

// IssueService files issues with the external tracker.
type IssueService interface {
	Create(ctx context.Context, req *dto.IssueRequest) (*dto.IssueResponse, error)
}
