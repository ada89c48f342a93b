package services

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.uber.org/zap"

	"meetscribe/internal/api/dto"
	"meetscribe/internal/api/errors"
	"meetscribe/internal/app/issues"
)

// IssueServiceImpl implements IssueService
type IssueServiceImpl struct {
	client *issues.Client
	logger *zap.Logger
}

// NewIssueService creates a new issue service
func NewIssueService(client *issues.Client, logger *zap.Logger) IssueService {
	return &IssueServiceImpl{client: client, logger: logger}
}

// Create files an issue with the caller's token and returns its URL.
func (s *IssueServiceImpl) Create(ctx context.Context, req *dto.IssueRequest) (*dto.IssueResponse, error) {
	url, err := s.client.CreateIssue(ctx, req.GitHubToken, req.RepoName, req.Title, req.Body)
	if err != nil {
		switch {
		case stderrors.Is(err, issues.ErrUnauthorized):
			return nil, errors.NewUnauthorizedError("GitHub token is invalid or has insufficient permissions")
		case stderrors.Is(err, issues.ErrRepoNotFound):
			return nil, errors.NewBadRequestError(fmt.Sprintf("Repository %q not found or token does not have access", req.RepoName))
		default:
			return nil, errors.NewUpstreamError(fmt.Sprintf("Could not connect to GitHub: %v", err))
		}
	}

	return &dto.IssueResponse{IssueURL: url}, nil
}
