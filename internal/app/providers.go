package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"meetscribe/internal/api/routes"
	"meetscribe/internal/api/server"
	"meetscribe/internal/api/services"
	"meetscribe/internal/app/downloader"
	"meetscribe/internal/app/gateway"
	"meetscribe/internal/app/gateway/gemini"
	"meetscribe/internal/app/gateway/whisper"
	"meetscribe/internal/app/repository"
	"meetscribe/internal/app/repository/pg"
	"meetscribe/internal/app/repository/sqlite"
	"meetscribe/internal/config"
)

// ProvideDAO opens the transcript store selected by DB_BACKEND. The cleanup
// function closes the underlying connection.
func ProvideDAO(cfg *config.Config) (repository.TranscriptDAO, func(), error) {
	var (
		dao repository.TranscriptDAO
		err error
	)

	switch cfg.DBBackend {
	case config.BackendPostgres:
		dao, err = pg.NewPostgresDB(cfg.PostgresDSN)
	default:
		dao, err = sqlite.NewSQLiteDB(cfg.SQLitePath)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open transcript store: %w", err)
	}

	return dao, func() { dao.Close() }, nil
}

// ProvideGemini builds the Gemini gateway client; it serves chat always and
// transcription when GATEWAY_PROVIDER is gemini.
func ProvideGemini(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*gemini.Client, error) {
	return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.Model, logger)
}

// ProvideTranscriber selects the transcription provider.
func ProvideTranscriber(cfg *config.Config, gem *gemini.Client, logger *zap.Logger) gateway.Transcriber {
	if cfg.Provider == config.ProviderOpenAI {
		return whisper.NewTranscriber(cfg.OpenAIAPIKey, logger)
	}
	return gem
}

// ProvideChatter exposes the Gemini client as the chat gateway.
func ProvideChatter(gem *gemini.Client) gateway.Chatter {
	return gem
}

// ProvideDownloader builds the yt-dlp acquisition adapter.
func ProvideDownloader(cfg *config.Config, logger *zap.Logger) *downloader.YtDlp {
	return downloader.NewYtDlp(cfg.YtDlpPath, cfg.TempDir, logger)
}

// ProvideServerConfig maps process configuration onto the HTTP server.
func ProvideServerConfig(cfg *config.Config) server.Config {
	return server.Config{
		Host:        cfg.Host,
		Port:        cfg.Port,
		Environment: cfg.Environment,
	}
}

// ProvideContainer groups the services for route registration.
func ProvideContainer(
	transcriptService services.TranscriptService,
	chatService services.ChatService,
	issueService services.IssueService,
) *routes.ServiceContainer {
	return &routes.ServiceContainer{
		TranscriptService: transcriptService,
		ChatService:       chatService,
		IssueService:      issueService,
	}
}
