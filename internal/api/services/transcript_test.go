package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"meetscribe/internal/api/dto"
	"meetscribe/internal/api/errors"
	"meetscribe/internal/app/downloader"
	"meetscribe/internal/app/gateway"
	"meetscribe/internal/app/testutil"
)

// fakeFetcher writes a file into a temp dir and hands back its path, so
// tests can observe whether the artifact survives the flow.
type fakeFetcher struct {
	audioPath string
	fetchErr  error
	title     string
}

func (f *fakeFetcher) FetchAudio(_ context.Context, _ string) (string, error) {
	if f.fetchErr != nil {
		return "", f.fetchErr
	}
	return f.audioPath, nil
}

func (f *fakeFetcher) ResolveTitle(_ context.Context, _ string) string {
	return f.title
}

func writeTempAudio(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dl.mp3")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestTranscriptService_AnalyzeUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("success stores and returns transcript", func(t *testing.T) {
		dao := testutil.NewMockTranscriptDAO(t)
		transcriber := testutil.NewMockTranscriber(t)

		transcriber.On("Transcribe", mock.Anything, []byte("riff"), "audio/wav").
			Return("[00:01] [說話者 1]: 哈囉", nil)
		dao.On("Create", mock.Anything, "standup.wav", "[00:01] [說話者 1]: 哈囉").
			Return(int64(9), nil)

		svc := NewTranscriptService(dao, transcriber, &fakeFetcher{}, zap.NewNop())
		resp, err := svc.AnalyzeUpload(ctx, "standup.wav", []byte("riff"), "audio/wav")
		require.NoError(t, err)
		assert.Equal(t, int64(9), resp.TranscriptID)
		assert.Equal(t, "[00:01] [說話者 1]: 哈囉", resp.Transcript)
	})

	t.Run("empty title gets a default", func(t *testing.T) {
		dao := testutil.NewMockTranscriptDAO(t)
		transcriber := testutil.NewMockTranscriber(t)

		transcriber.On("Transcribe", mock.Anything, mock.Anything, mock.Anything).
			Return("text", nil)
		dao.On("Create", mock.Anything, "Uploaded Audio", "text").
			Return(int64(1), nil)

		svc := NewTranscriptService(dao, transcriber, &fakeFetcher{}, zap.NewNop())
		_, err := svc.AnalyzeUpload(ctx, "", []byte("x"), "audio/mpeg")
		require.NoError(t, err)
		dao.AssertExpectations(t)
	})

	t.Run("gateway fault is never stored", func(t *testing.T) {
		dao := testutil.NewMockTranscriptDAO(t)
		transcriber := testutil.NewMockTranscriber(t)

		transcriber.On("Transcribe", mock.Anything, mock.Anything, mock.Anything).
			Return("", gateway.ErrUpstream)

		svc := NewTranscriptService(dao, transcriber, &fakeFetcher{}, zap.NewNop())
		_, err := svc.AnalyzeUpload(ctx, "t", []byte("x"), "audio/mpeg")

		var apiErr *errors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, errors.KindUpstream, apiErr.Kind)
		dao.AssertNotCalled(t, "Create")
	})

	t.Run("empty gateway result", func(t *testing.T) {
		dao := testutil.NewMockTranscriptDAO(t)
		transcriber := testutil.NewMockTranscriber(t)

		transcriber.On("Transcribe", mock.Anything, mock.Anything, mock.Anything).
			Return("", gateway.ErrEmptyResult)

		svc := NewTranscriptService(dao, transcriber, &fakeFetcher{}, zap.NewNop())
		_, err := svc.AnalyzeUpload(ctx, "t", []byte("x"), "audio/mpeg")

		var apiErr *errors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, errors.KindUpstream, apiErr.Kind)
		assert.Contains(t, apiErr.Message, "no usable content")
	})
}

func TestTranscriptService_AnalyzeYouTube(t *testing.T) {
	ctx := context.Background()

	t.Run("success removes the transient artifact", func(t *testing.T) {
		audioPath := writeTempAudio(t, []byte("mp3-bytes"))
		dao := testutil.NewMockTranscriptDAO(t)
		transcriber := testutil.NewMockTranscriber(t)

		transcriber.On("Transcribe", mock.Anything, []byte("mp3-bytes"), "audio/mpeg").
			Return("transcribed", nil)
		dao.On("Create", mock.Anything, "Resolved Title", "transcribed").
			Return(int64(5), nil)

		svc := NewTranscriptService(dao, transcriber, &fakeFetcher{audioPath: audioPath, title: "Resolved Title"}, zap.NewNop())
		resp, err := svc.AnalyzeYouTube(ctx, &dto.YouTubeRequest{URL: "https://youtu.be/abc"})
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.TranscriptID)
		assert.NoFileExists(t, audioPath)
	})

	t.Run("gateway fault still removes the artifact", func(t *testing.T) {
		audioPath := writeTempAudio(t, []byte("mp3-bytes"))
		dao := testutil.NewMockTranscriptDAO(t)
		transcriber := testutil.NewMockTranscriber(t)

		transcriber.On("Transcribe", mock.Anything, mock.Anything, mock.Anything).
			Return("", gateway.ErrUpstream)

		svc := NewTranscriptService(dao, transcriber, &fakeFetcher{audioPath: audioPath}, zap.NewNop())
		_, err := svc.AnalyzeYouTube(ctx, &dto.YouTubeRequest{URL: "https://youtu.be/abc"})

		var apiErr *errors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, errors.KindUpstream, apiErr.Kind)
		assert.NoFileExists(t, audioPath)
		dao.AssertNotCalled(t, "Create")
	})

	t.Run("invalid source maps to bad request", func(t *testing.T) {
		dao := testutil.NewMockTranscriptDAO(t)
		transcriber := testutil.NewMockTranscriber(t)

		svc := NewTranscriptService(dao, transcriber, &fakeFetcher{fetchErr: downloader.ErrInvalidSource}, zap.NewNop())
		_, err := svc.AnalyzeYouTube(ctx, &dto.YouTubeRequest{URL: "ftp://nope"})

		var apiErr *errors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, errors.KindBadRequest, apiErr.Kind)
	})

	t.Run("download failure maps to download kind", func(t *testing.T) {
		dao := testutil.NewMockTranscriptDAO(t)
		transcriber := testutil.NewMockTranscriber(t)

		svc := NewTranscriptService(dao, transcriber, &fakeFetcher{fetchErr: downloader.ErrDownload}, zap.NewNop())
		_, err := svc.AnalyzeYouTube(ctx, &dto.YouTubeRequest{URL: "https://youtu.be/abc"})

		var apiErr *errors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, errors.KindDownload, apiErr.Kind)
	})

	t.Run("explicit title wins over resolution", func(t *testing.T) {
		audioPath := writeTempAudio(t, []byte("mp3"))
		dao := testutil.NewMockTranscriptDAO(t)
		transcriber := testutil.NewMockTranscriber(t)

		transcriber.On("Transcribe", mock.Anything, mock.Anything, mock.Anything).
			Return("text", nil)
		dao.On("Create", mock.Anything, "My Own Title", "text").
			Return(int64(2), nil)

		svc := NewTranscriptService(dao, transcriber, &fakeFetcher{audioPath: audioPath, title: "Scraped Title"}, zap.NewNop())
		_, err := svc.AnalyzeYouTube(ctx, &dto.YouTubeRequest{URL: "https://youtu.be/abc", Title: "My Own Title"})
		require.NoError(t, err)
		dao.AssertExpectations(t)
	})
}

func TestTranscriptService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id maps to not found", func(t *testing.T) {
		dao := testutil.NewMockTranscriptDAO(t)
		dao.On("Delete", mock.Anything, int64(42)).Return(false, nil)

		svc := NewTranscriptService(dao, testutil.NewMockTranscriber(t), &fakeFetcher{}, zap.NewNop())
		err := svc.Delete(ctx, 42)

		var apiErr *errors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, errors.KindNotFound, apiErr.Kind)
	})

	t.Run("existing id deletes cleanly", func(t *testing.T) {
		dao := testutil.NewMockTranscriptDAO(t)
		dao.On("Delete", mock.Anything, int64(7)).Return(true, nil)

		svc := NewTranscriptService(dao, testutil.NewMockTranscriber(t), &fakeFetcher{}, zap.NewNop())
		assert.NoError(t, svc.Delete(ctx, 7))
	})
}
