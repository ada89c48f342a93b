package ingest

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"meetscribe/internal/app"
	"meetscribe/internal/app/importer"
	"meetscribe/internal/config"
	"meetscribe/internal/logger"
)

var (
	audioDir string
	limit    int
)

func init() {
	Cmd.Flags().StringVarP(&audioDir, "audioDir", "d", "",
		"directory containing the audio files to import")
	Cmd.Flags().IntVarP(&limit, "limit", "n", 0,
		"maximum number of files to import in one run (0 = no limit)")

	Cmd.MarkFlagRequired("audioDir")
}

// Cmd represents the ingest command
var Cmd = &cobra.Command{
	Use:   "ingest",
	Short: "Batch-transcribe the audio files in a directory",
	Long: `Batch-transcribe the audio files in a directory.

- Iterates over the audio files in the given directory, oldest first
- Transcribes each through the configured gateway provider
- Stores the results as transcripts titled by file name
- Files already imported under the same title are skipped`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		log := logger.MustNew(true)
		defer log.Sync()

		ctx := context.Background()
		imp, cleanup, err := app.InitializeImporter(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer cleanup()

		return imp.Do(ctx, audioDir, limit, importer.ProgressConfig{Enabled: true})
	},
}
