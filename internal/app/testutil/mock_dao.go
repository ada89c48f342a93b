package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"meetscribe/internal/app/model"
)

// MockTranscriptDAO is a mock implementation of repository.TranscriptDAO
type MockTranscriptDAO struct {
	mock.Mock
}

func NewMockTranscriptDAO(t *testing.T) *MockTranscriptDAO {
	m := &MockTranscriptDAO{}
	m.Test(t)
	return m
}

func (m *MockTranscriptDAO) Create(ctx context.Context, title, content string) (int64, error) {
	args := m.Called(ctx, title, content)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTranscriptDAO) ListAll(ctx context.Context) ([]model.Transcript, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transcript), args.Error(1)
}

func (m *MockTranscriptDAO) FetchContents(ctx context.Context, ids []int64) ([]string, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTranscriptDAO) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTranscriptDAO) Close() error {
	args := m.Called()
	return args.Error(0)
}
