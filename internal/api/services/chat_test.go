package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"meetscribe/internal/api/dto"
	"meetscribe/internal/api/errors"
	"meetscribe/internal/app/gateway"
	"meetscribe/internal/app/testutil"
)

func TestChatService_Answer(t *testing.T) {
	ctx := context.Background()

	t.Run("renders the markdown reply as html", func(t *testing.T) {
		dao := testutil.NewMockTranscriptDAO(t)
		chatter := testutil.NewMockChatter(t)

		chatter.On("Answer", mock.Anything, []string{"inline transcript"}, "summarize").
			Return("## 重點\n\n- 預算", nil)

		svc := NewChatService(dao, chatter, zap.NewNop())
		resp, err := svc.Answer(ctx, &dto.ChatRequest{
			Transcripts: []string{"inline transcript"},
			Question:    "summarize",
		})
		require.NoError(t, err)
		assert.Contains(t, resp.Answer, "<h2")
		assert.Contains(t, resp.Answer, "<li>預算</li>")
	})

	t.Run("stored ids come before inline texts", func(t *testing.T) {
		dao := testutil.NewMockTranscriptDAO(t)
		chatter := testutil.NewMockChatter(t)

		dao.On("FetchContents", mock.Anything, []int64{3, 8}).
			Return([]string{"stored one", "stored two"}, nil)
		chatter.On("Answer", mock.Anything, []string{"stored one", "stored two", "inline"}, "compare").
			Return("answer", nil)

		svc := NewChatService(dao, chatter, zap.NewNop())
		_, err := svc.Answer(ctx, &dto.ChatRequest{
			Transcripts:   []string{"inline"},
			TranscriptIDs: []int64{3, 8},
			Question:      "compare",
		})
		require.NoError(t, err)
		chatter.AssertExpectations(t)
	})

	t.Run("ids matching nothing is a validation error", func(t *testing.T) {
		dao := testutil.NewMockTranscriptDAO(t)
		chatter := testutil.NewMockChatter(t)

		dao.On("FetchContents", mock.Anything, []int64{404}).
			Return([]string{}, nil)

		svc := NewChatService(dao, chatter, zap.NewNop())
		_, err := svc.Answer(ctx, &dto.ChatRequest{
			TranscriptIDs: []int64{404},
			Question:      "anything",
		})

		var apiErr *errors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, errors.KindValidation, apiErr.Kind)
		chatter.AssertNotCalled(t, "Answer")
	})

	t.Run("gateway fault maps to upstream", func(t *testing.T) {
		dao := testutil.NewMockTranscriptDAO(t)
		chatter := testutil.NewMockChatter(t)

		chatter.On("Answer", mock.Anything, mock.Anything, mock.Anything).
			Return("", gateway.ErrUpstream)

		svc := NewChatService(dao, chatter, zap.NewNop())
		_, err := svc.Answer(ctx, &dto.ChatRequest{
			Transcripts: []string{"text"},
			Question:    "q",
		})

		var apiErr *errors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, errors.KindUpstream, apiErr.Kind)
	})
}
