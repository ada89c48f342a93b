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

func TestIssueHandler_Create(t *testing.T) {
	validRequest := map[string]interface{}{
		"github_token": "ghp_sometoken",
		"repo_name":    "acme/meetscribe-feedback",
		"title":        "Transcript timestamps drift",
		"body":         "Seen on longer recordings.",
	}

	tests := []struct {
		name           string
		request        map[string]interface{}
		setupMocks     func(*testutil.MockServices)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name:    "successful issue creation",
			request: validRequest,
			setupMocks: func(ms *testutil.MockServices) {
				ms.IssueService.On("Create", mock.Anything, mock.MatchedBy(func(req *dto.IssueRequest) bool {
					return req.RepoName == "acme/meetscribe-feedback"
				})).Return(&dto.IssueResponse{IssueURL: "https://github.com/acme/meetscribe-feedback/issues/17"}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "https://github.com/acme/meetscribe-feedback/issues/17", body["issue_url"])
			},
		},
		{
			name: "missing token",
			request: map[string]interface{}{
				"repo_name": "acme/meetscribe-feedback",
				"title":     "Broken",
			},
			setupMocks:     func(ms *testutil.MockServices) {},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "validation", body["kind"])
				details := body["details"].(map[string]interface{})
				assert.Equal(t, "is required", details["githubtoken"])
			},
		},
		{
			name:    "bad token",
			request: validRequest,
			setupMocks: func(ms *testutil.MockServices) {
				ms.IssueService.On("Create", mock.Anything, mock.Anything).
					Return(nil, errors.NewUnauthorizedError("Invalid GitHub token"))
			},
			expectedStatus: http.StatusUnauthorized,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "unauthorized", body["kind"])
			},
		},
		{
			name:    "unknown repository",
			request: validRequest,
			setupMocks: func(ms *testutil.MockServices) {
				ms.IssueService.On("Create", mock.Anything, mock.Anything).
					Return(nil, errors.NewBadRequestError("Repository not found or access denied"))
			},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "bad_request", body["kind"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			tt.setupMocks(mockServices)

			handler := handlers.NewIssueHandler(mockServices.IssueService)
			router.POST("/api/github/issue", handler.Create)

			body, err := json.Marshal(tt.request)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/api/github/issue", bytes.NewReader(body))
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
