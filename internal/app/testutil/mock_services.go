package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"meetscribe/internal/api/dto"
)

// MockServices contains all mock services for testing
type MockServices struct {
	TranscriptService *MockTranscriptService
	ChatService       *MockChatService
	IssueService      *MockIssueService
}

// NewMockServices creates a new instance of mock services
func NewMockServices(t *testing.T) *MockServices {
	return &MockServices{
		TranscriptService: NewMockTranscriptService(t),
		ChatService:       NewMockChatService(t),
		IssueService:      NewMockIssueService(t),
	}
}

// MockTranscriptService is a mock implementation of services.TranscriptService
type MockTranscriptService struct {
	mock.Mock
}

func NewMockTranscriptService(t *testing.T) *MockTranscriptService {
	m := &MockTranscriptService{}
	m.Test(t)
	return m
}

func (m *MockTranscriptService) AnalyzeUpload(ctx context.Context, title string, audio []byte, mimeType string) (*dto.AnalysisResponse, error) {
	args := m.Called(ctx, title, audio, mimeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AnalysisResponse), args.Error(1)
}

func (m *MockTranscriptService) AnalyzeYouTube(ctx context.Context, req *dto.YouTubeRequest) (*dto.AnalysisResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AnalysisResponse), args.Error(1)
}

func (m *MockTranscriptService) List(ctx context.Context) ([]dto.TranscriptResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TranscriptResponse), args.Error(1)
}

func (m *MockTranscriptService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockChatService is a mock implementation of services.ChatService
type MockChatService struct {
	mock.Mock
}

func NewMockChatService(t *testing.T) *MockChatService {
	m := &MockChatService{}
	m.Test(t)
	return m
}

func (m *MockChatService) Answer(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChatResponse), args.Error(1)
}

// MockIssueService is a mock implementation of services.IssueService
type MockIssueService struct {
	mock.Mock
}

func NewMockIssueService(t *testing.T) *MockIssueService {
	m := &MockIssueService{}
	m.Test(t)
	return m
}

func (m *MockIssueService) Create(ctx context.Context, req *dto.IssueRequest) (*dto.IssueResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.IssueResponse), args.Error(1)
}
