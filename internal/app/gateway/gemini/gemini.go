// Package gemini implements the transcription and chat gateways on top of
// the Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"meetscribe/internal/app/gateway"
)

// DefaultModel is the multimodal model used for both transcription and chat.
const DefaultModel = "gemini-1.5-flash-latest"

// generationConfig mirrors the tuning the transcription prompt was written
// against. Chat requests go out with model defaults instead.
var generationConfig = &genai.GenerateContentConfig{
	Temperature:      genai.Ptr[float32](0.3),
	TopP:             genai.Ptr[float32](0.95),
	TopK:             genai.Ptr[float32](64),
	MaxOutputTokens:  8192,
	ResponseMIMEType: "text/plain",
}

// Client talks to the Gemini API. It implements both gateway.Transcriber and
// gateway.Chatter.
type Client struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewClient creates a Gemini-backed gateway client. An empty model selects
// DefaultModel.
func NewClient(ctx context.Context, apiKey, model string, logger *zap.Logger) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Transcribe sends the audio bytes and the fixed transcription prompt to
// Gemini and returns the trimmed transcript.
func (c *Client) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	c.logger.Info("sending transcription request to gemini",
		zap.String("model", c.model),
		zap.String("mime_type", mimeType),
		zap.Int("audio_bytes", len(audio)),
	)

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(gateway.TranscribePrompt),
			genai.NewPartFromBytes(audio, mimeType),
		}, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, generationConfig)
	if err != nil {
		c.logger.Error("gemini transcription call failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", gateway.ErrUpstream, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		c.logger.Warn("gemini returned no usable content for transcription")
		return "", gateway.ErrEmptyResult
	}

	return text, nil
}

// Answer builds the chat prompt from the transcripts and question and
// returns Gemini's markdown reply.
func (c *Client) Answer(ctx context.Context, transcripts []string, question string) (string, error) {
	prompt := gateway.BuildChatPrompt(transcripts, question)

	c.logger.Info("sending chat request to gemini",
		zap.String("model", c.model),
		zap.Int("transcript_count", len(transcripts)),
	)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		c.logger.Error("gemini chat call failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", gateway.ErrUpstream, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", gateway.ErrEmptyResult
	}

	return text, nil
}
