// Package importer batch-transcribes local audio files into the store.
package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"meetscribe/internal/app/audio"
	"meetscribe/internal/app/gateway"
	"meetscribe/internal/app/model"
	"meetscribe/internal/app/repository"
)

// Importer walks a directory of audio files and transcribes each one
// through the configured gateway, persisting results as transcripts titled
// by file name.
type Importer struct {
	dao         repository.TranscriptDAO
	transcriber gateway.Transcriber
	logger      *zap.Logger
}

func NewImporter(dao repository.TranscriptDAO, transcriber gateway.Transcriber, logger *zap.Logger) *Importer {
	return &Importer{
		dao:         dao,
		transcriber: transcriber,
		logger:      logger,
	}
}

// Do imports up to limit unprocessed audio files from inputDir, oldest
// first. Files whose name already appears as a transcript title are skipped.
func (i *Importer) Do(ctx context.Context, inputDir string, limit int, progress ProgressConfig) error {
	files, err := collectAudioFiles(inputDir)
	if err != nil {
		return err
	}

	existing, err := i.existingTitles(ctx)
	if err != nil {
		return err
	}

	toProcess := make([]string, 0, limit)
	for _, path := range files {
		if _, done := existing[filepath.Base(path)]; done {
			i.logger.Info("already imported, skipping", zap.String("file", filepath.Base(path)))
			continue
		}
		toProcess = append(toProcess, path)
		if limit > 0 && len(toProcess) >= limit {
			break
		}
	}

	if len(toProcess) == 0 {
		i.logger.Info("nothing to import", zap.String("dir", inputDir))
		return nil
	}

	pm := NewProgressManager(progress)
	bar := pm.CreateBar(len(toProcess), "importing")

	for _, path := range toProcess {
		if err := i.importFile(ctx, path); err != nil {
			bar.Abort()
			pm.Wait()
			return err
		}
		bar.Increment()
	}

	pm.Wait()
	return nil
}

func (i *Importer) importFile(ctx context.Context, path string) error {
	mimeType := audio.MIMETypeForFile(path)
	if mimeType == "" {
		return fmt.Errorf("unsupported audio format: %s", path)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	text, err := i.transcriber.Transcribe(ctx, contents, mimeType)
	if err != nil {
		return fmt.Errorf("transcription failed for %s: %w", path, err)
	}

	id, err := i.dao.Create(ctx, filepath.Base(path), text)
	if err != nil {
		return fmt.Errorf("failed to store transcript for %s: %w", path, err)
	}

	i.logger.Info("imported audio file",
		zap.String("file", filepath.Base(path)),
		zap.Int64("transcript_id", id),
	)
	return nil
}

func (i *Importer) existingTitles(ctx context.Context) (map[string]struct{}, error) {
	transcripts, err := i.dao.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list existing transcripts: %w", err)
	}
	return lo.SliceToMap(transcripts, func(t model.Transcript) (string, struct{}) {
		return t.Title, struct{}{}
	}), nil
}

// collectAudioFiles lists supported audio files in dir (non-recursive),
// oldest modification time first.
func collectAudioFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	type fileWithTime struct {
		path    string
		modTime int64
	}

	files := make([]fileWithTime, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if audio.MIMETypeForFile(entry.Name()) == "" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, fileWithTime{
			path:    filepath.Join(dir, entry.Name()),
			modTime: info.ModTime().UnixNano(),
		})
	}

	sort.Slice(files, func(a, b int) bool {
		if files[a].modTime != files[b].modTime {
			return files[a].modTime < files[b].modTime
		}
		return strings.Compare(files[a].path, files[b].path) < 0
	})

	return lo.Map(files, func(f fileWithTime, _ int) string { return f.path }), nil
}
