package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"meetscribe/internal/api/dto"
	"meetscribe/internal/api/errors"
	"meetscribe/internal/app/downloader"
	"meetscribe/internal/app/gateway"
	"meetscribe/internal/app/model"
	"meetscribe/internal/app/repository"
)

// youtubeAudioMIMEType is what the downloader is pinned to produce.
const youtubeAudioMIMEType = "audio/mpeg"

// AudioFetcher acquires a transient local audio artifact for a video URL.
// *downloader.YtDlp is the production implementation.
type AudioFetcher interface {
	FetchAudio(ctx context.Context, rawURL string) (string, error)
	ResolveTitle(ctx context.Context, rawURL string) string
}

// TranscriptServiceImpl implements TranscriptService
type TranscriptServiceImpl struct {
	dao         repository.TranscriptDAO
	transcriber gateway.Transcriber
	fetcher     AudioFetcher
	logger      *zap.Logger
}

// NewTranscriptService creates a new transcript service
func NewTranscriptService(
	dao repository.TranscriptDAO,
	transcriber gateway.Transcriber,
	fetcher AudioFetcher,
	logger *zap.Logger,
) TranscriptService {
	return &TranscriptServiceImpl{
		dao:         dao,
		transcriber: transcriber,
		fetcher:     fetcher,
		logger:      logger,
	}
}

// AnalyzeUpload transcribes the uploaded audio and persists the result.
// Content-type screening happens at the handler, before any work.
func (s *TranscriptServiceImpl) AnalyzeUpload(ctx context.Context, title string, audio []byte, mimeType string) (*dto.AnalysisResponse, error) {
	if title == "" {
		title = "Uploaded Audio"
	}

	text, err := s.transcriber.Transcribe(ctx, audio, mimeType)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	id, err := s.dao.Create(ctx, title, text)
	if err != nil {
		s.logger.Error("failed to persist transcript", zap.Error(err))
		return nil, errors.NewInternalError("Failed to save transcript")
	}

	s.logger.Info("stored transcript",
		zap.Int64("transcript_id", id),
		zap.String("title", title),
	)

	return &dto.AnalysisResponse{Transcript: text, TranscriptID: id}, nil
}

// AnalyzeYouTube downloads the video's audio, transcribes it and persists
// the result. The transient artifact is deleted on every exit path.
func (s *TranscriptServiceImpl) AnalyzeYouTube(ctx context.Context, req *dto.YouTubeRequest) (*dto.AnalysisResponse, error) {
	audioPath, err := s.fetcher.FetchAudio(ctx, req.URL)
	if err != nil {
		return nil, mapDownloadError(err)
	}
	defer downloader.Cleanup(audioPath, s.logger)

	contents, err := os.ReadFile(audioPath)
	if err != nil {
		s.logger.Error("failed to read downloaded artifact",
			zap.String("path", audioPath),
			zap.Error(err),
		)
		return nil, errors.NewDownloadError("Failed to read downloaded audio")
	}

	title := req.Title
	if title == "" {
		title = s.fetcher.ResolveTitle(ctx, req.URL)
	}

	return s.AnalyzeUpload(ctx, title, contents, youtubeAudioMIMEType)
}

func (s *TranscriptServiceImpl) List(ctx context.Context) ([]dto.TranscriptResponse, error) {
	transcripts, err := s.dao.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list transcripts", zap.Error(err))
		return nil, errors.NewInternalError("Failed to list transcripts")
	}

	return lo.Map(transcripts, func(t model.Transcript, _ int) dto.TranscriptResponse {
		return dto.NewTranscriptResponse(t)
	}), nil
}

func (s *TranscriptServiceImpl) Delete(ctx context.Context, id int64) error {
	deleted, err := s.dao.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete transcript",
			zap.Int64("transcript_id", id),
			zap.Error(err),
		)
		return errors.NewInternalError("Failed to delete transcript")
	}
	if !deleted {
		return errors.NewNotFoundError("Transcript")
	}
	return nil
}

// mapGatewayError translates gateway faults into the API error taxonomy.
func mapGatewayError(err error) *errors.APIError {
	switch {
	case stderrors.Is(err, gateway.ErrEmptyResult):
		return errors.NewUpstreamError("The AI service returned no usable content")
	case stderrors.Is(err, gateway.ErrUpstream):
		return errors.NewUpstreamError(fmt.Sprintf("Error communicating with the AI service: %v", err))
	default:
		return errors.NewInternalError(fmt.Sprintf("Unexpected error during analysis: %v", err))
	}
}

// mapDownloadError translates downloader faults into the API error taxonomy.
func mapDownloadError(err error) *errors.APIError {
	if stderrors.Is(err, downloader.ErrInvalidSource) {
		return errors.NewBadRequestError("Unable to download audio from the given URL; check that the address is correct")
	}
	return errors.NewDownloadError(fmt.Sprintf("Error downloading audio: %v", err))
}
