package dto

import (
	"time"

	"meetscribe/internal/api/errors"
	"meetscribe/internal/app/model"
)

// AnalysisResponse is returned by both the upload and the YouTube flows.
type AnalysisResponse struct {
	Transcript   string `json:"transcript"`
	TranscriptID int64  `json:"transcript_id"`
}

// YouTubeRequest asks for a remote video's audio to be transcribed.
type YouTubeRequest struct {
	URL   string `json:"url" binding:"required,url"`
	Title string `json:"title,omitempty"`
}

// TranscriptResponse is one stored transcript row.
type TranscriptResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTranscriptResponse maps a stored transcript into its API shape.
func NewTranscriptResponse(t model.Transcript) TranscriptResponse {
	return TranscriptResponse{
		ID:        t.ID,
		Title:     t.Title,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
	}
}

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	Message string `json:"message"`
}

// ChatRequest carries transcript context (inline texts and/or stored ids)
// plus the user's question.
type ChatRequest struct {
	Transcripts   []string `json:"transcripts"`
	TranscriptIDs []int64  `json:"transcript_ids,omitempty"`
	Question      string   `json:"question" binding:"required"`
}

// Validate rejects a chat request with no transcript context at all; an
// empty context is a caller error, not a silent success.
func (r *ChatRequest) Validate() error {
	if len(r.Transcripts) == 0 && len(r.TranscriptIDs) == 0 {
		return errors.NewValidationError("Invalid chat request", map[string]string{
			"transcripts": "at least one transcript or transcript id is required",
		})
	}
	return nil
}

// ChatResponse carries the HTML-rendered answer.
type ChatResponse struct {
	Answer string `json:"answer"`
}

// IssueRequest files a GitHub issue on the caller's behalf.
type IssueRequest struct {
	GitHubToken string `json:"github_token" binding:"required"`
	RepoName    string `json:"repo_name" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Body        string `json:"body"`
}

// IssueResponse returns the created issue's URL.
type IssueResponse struct {
	IssueURL string `json:"issue_url"`
}
