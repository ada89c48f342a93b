package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"meetscribe/internal/api/dto"
	"meetscribe/internal/api/errors"
	"meetscribe/internal/api/handlers"
	"meetscribe/internal/app/testutil"
)

func TestChatHandler_Chat(t *testing.T) {
	tests := []struct {
		name           string
		request        map[string]interface{}
		setupMocks     func(*testutil.MockServices)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name: "answers over inline transcripts",
			request: map[string]interface{}{
				"transcripts": []string{"[00:01] [說話者 1]: 我們先談預算"},
				"question":    "主要討論了什麼?",
			},
			setupMocks: func(ms *testutil.MockServices) {
				ms.ChatService.On("Answer", mock.Anything, mock.MatchedBy(func(req *dto.ChatRequest) bool {
					return req.Question == "主要討論了什麼?" && len(req.Transcripts) == 1
				})).Return(&dto.ChatResponse{Answer: "<p>主要討論了預算。</p>"}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "<p>主要討論了預算。</p>", body["answer"])
			},
		},
		{
			name: "answers over stored transcript ids",
			request: map[string]interface{}{
				"transcript_ids": []int64{1, 2},
				"question":       "比較兩場會議",
			},
			setupMocks: func(ms *testutil.MockServices) {
				ms.ChatService.On("Answer", mock.Anything, mock.Anything).
					Return(&dto.ChatResponse{Answer: "<p>兩場會議都談到時程。</p>"}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.NotEmpty(t, body["answer"])
			},
		},
		{
			name: "no transcript context at all",
			request: map[string]interface{}{
				"question": "嗨",
			},
			setupMocks:     func(ms *testutil.MockServices) {},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "validation", body["kind"])
				details := body["details"].(map[string]interface{})
				assert.Contains(t, details["transcripts"], "at least one")
			},
		},
		{
			name: "missing question",
			request: map[string]interface{}{
				"transcripts": []string{"some text"},
			},
			setupMocks:     func(ms *testutil.MockServices) {},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "validation", body["kind"])
				details := body["details"].(map[string]interface{})
				assert.Equal(t, "is required", details["question"])
			},
		},
		{
			name: "gateway fault",
			request: map[string]interface{}{
				"transcripts": []string{"some text"},
				"question":    "summary please",
			},
			setupMocks: func(ms *testutil.MockServices) {
				ms.ChatService.On("Answer", mock.Anything, mock.Anything).
					Return(nil, errors.NewUpstreamError("Error communicating with the AI service: timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "upstream", body["kind"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			tt.setupMocks(mockServices)

			handler := handlers.NewChatHandler(mockServices.ChatService)
			router.POST("/api/chat", handler.Chat)

			body, err := json.Marshal(tt.request)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/api/chat", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var responseBody map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &responseBody))
			tt.validateBody(t, responseBody)
		})
	}
}
