// Package whisper implements the transcription gateway on the OpenAI
// Whisper API as an alternative provider. Whisper takes the instruction
// text as a steering prompt only, so diarization labels are best-effort
// compared to the default Gemini provider.
package whisper

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"meetscribe/internal/app/audio"
	"meetscribe/internal/app/gateway"
)

// Transcriber implements gateway.Transcriber using the OpenAI API.
type Transcriber struct {
	client *openai.Client
	logger *zap.Logger
}

// NewTranscriber creates a Whisper-backed transcriber.
func NewTranscriber(apiKey string, logger *zap.Logger) *Transcriber {
	return &Transcriber{
		client: openai.NewClient(apiKey),
		logger: logger,
	}
}

// Transcribe uploads the audio bytes to the Whisper endpoint and returns the
// trimmed transcript.
func (t *Transcriber) Transcribe(ctx context.Context, audioBytes []byte, mimeType string) (string, error) {
	fileName := "audio" + audio.ExtensionForMIMEType(mimeType)

	t.logger.Info("sending transcription request to whisper",
		zap.String("file_name", fileName),
		zap.Int("audio_bytes", len(audioBytes)),
	)

	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: fileName,
		Reader:   bytes.NewReader(audioBytes),
		Prompt:   gateway.TranscribePrompt,
	}
	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		t.logger.Error("whisper transcription call failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", gateway.ErrUpstream, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", gateway.ErrEmptyResult
	}
	return text, nil
}
