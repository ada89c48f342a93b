//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"meetscribe/internal/api/server"
	"meetscribe/internal/api/services"
	"meetscribe/internal/app/downloader"
	"meetscribe/internal/app/importer"
	"meetscribe/internal/app/issues"
	"meetscribe/internal/app/repository"
	"meetscribe/internal/config"
)

// InitializeServer wires the full HTTP server from configuration.
func InitializeServer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*server.Server, func(), error) {
	wire.Build(
		ProvideDAO,
		ProvideGemini,
		ProvideTranscriber,
		ProvideChatter,
		ProvideDownloader,
		wire.Bind(new(services.AudioFetcher), new(*downloader.YtDlp)),
		issues.NewClient,
		services.NewTranscriptService,
		services.NewChatService,
		services.NewIssueService,
		ProvideContainer,
		ProvideServerConfig,
		server.NewServer,
	)
	return nil, nil, nil
}

// InitializeImporter wires the batch importer for the CLI.
func InitializeImporter(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*importer.Importer, func(), error) {
	wire.Build(
		ProvideDAO,
		ProvideGemini,
		ProvideTranscriber,
		importer.NewImporter,
	)
	return nil, nil, nil
}

// InitializeDAO wires just the transcript store (for the export CLI).
func InitializeDAO(cfg *config.Config) (repository.TranscriptDAO, func(), error) {
	wire.Build(ProvideDAO)
	return nil, nil, nil
}
