package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockTranscriber is a mock implementation of gateway.Transcriber
type MockTranscriber struct {
	mock.Mock
}

func NewMockTranscriber(t *testing.T) *MockTranscriber {
	m := &MockTranscriber{}
	m.Test(t)
	return m
}

func (m *MockTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	args := m.Called(ctx, audio, mimeType)
	return args.String(0), args.Error(1)
}

// MockChatter is a mock implementation of gateway.Chatter
type MockChatter struct {
	mock.Mock
}

func NewMockChatter(t *testing.T) *MockChatter {
	m := &MockChatter{}
	m.Test(t)
	return m
}

func (m *MockChatter) Answer(ctx context.Context, transcripts []string, question string) (string, error) {
	args := m.Called(ctx, transcripts, question)
	return args.String(0), args.Error(1)
}
