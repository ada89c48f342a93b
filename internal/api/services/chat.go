package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"meetscribe/internal/api/dto"
	"meetscribe/internal/api/errors"
	"meetscribe/internal/app/gateway"
	"meetscribe/internal/app/markdown"
	"meetscribe/internal/app/repository"
)

// ChatServiceImpl implements ChatService
type ChatServiceImpl struct {
	dao     repository.TranscriptDAO
	chatter gateway.Chatter
	logger  *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(dao repository.TranscriptDAO, chatter gateway.Chatter, logger *zap.Logger) ChatService {
	return &ChatServiceImpl{
		dao:     dao,
		chatter: chatter,
		logger:  logger,
	}
}

// Answer gathers the transcript context (stored rows first, then inline
// texts), asks the gateway, and renders the markdown reply to HTML.
func (s *ChatServiceImpl) Answer(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	transcripts := make([]string, 0, len(req.Transcripts)+len(req.TranscriptIDs))

	if len(req.TranscriptIDs) > 0 {
		contents, err := s.dao.FetchContents(ctx, req.TranscriptIDs)
		if err != nil {
			s.logger.Error("failed to fetch transcript contents", zap.Error(err))
			return nil, errors.NewInternalError("Failed to load transcripts")
		}
		transcripts = append(transcripts, contents...)
	}
	transcripts = append(transcripts, req.Transcripts...)

	// Ids that matched nothing can leave us with no context at all.
	if len(transcripts) == 0 {
		return nil, errors.NewValidationError("Invalid chat request", map[string]string{
			"transcript_ids": "none of the given ids matched a stored transcript",
		})
	}

	answer, err := s.chatter.Answer(ctx, transcripts, req.Question)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	html, err := markdown.ToHTML(answer)
	if err != nil {
		s.logger.Error("failed to render chat answer", zap.Error(err))
		return nil, errors.NewInternalError(fmt.Sprintf("Failed to render answer: %v", err))
	}

	return &dto.ChatResponse{Answer: html}, nil
}
