// Package downloader acquires a transient local audio artifact from a
// remote video URL by shelling out to yt-dlp.
package downloader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

var (
	// ErrInvalidSource indicates the URL could not be resolved or
	// downloaded. Maps to a client error upstream.
	ErrInvalidSource = errors.New("invalid source url")

	// ErrDownload indicates any other downloader fault, including an
	// artifact in an unexpected codec. Maps to a server error upstream.
	ErrDownload = errors.New("download failed")
)

// Runner executes an external command and returns its standard output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return output, fmt.Errorf("%v: %s", err, strings.TrimSpace(stderr.String()))
	}
	return output, nil
}

// YtDlp downloads best-available audio from a video URL and transcodes it to
// mp3. The produced file is transient: the caller owns it and must remove it
// on every exit path.
type YtDlp struct {
	binary     string
	tempDir    string
	runner     Runner
	httpClient *http.Client
	logger     *zap.Logger
}

// NewYtDlp creates a downloader that invokes the given yt-dlp binary and
// writes artifacts under tempDir.
func NewYtDlp(binary, tempDir string, logger *zap.Logger) *YtDlp {
	if binary == "" {
		binary = "yt-dlp"
	}
	return &YtDlp{
		binary:     binary,
		tempDir:    tempDir,
		runner:     execRunner{},
		httpClient: http.DefaultClient,
		logger:     logger,
	}
}

// NewYtDlpWithRunner is like NewYtDlp with a custom command runner.
func NewYtDlpWithRunner(binary, tempDir string, runner Runner, logger *zap.Logger) *YtDlp {
	d := NewYtDlp(binary, tempDir, logger)
	d.runner = runner
	return d
}

// FetchAudio downloads the audio track for rawURL, transcoded to mp3, and
// returns the path of the transient artifact.
func (d *YtDlp) FetchAudio(ctx context.Context, rawURL string) (string, error) {
	if err := validateURL(rawURL); err != nil {
		return "", err
	}

	if err := os.MkdirAll(d.tempDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("%w: failed to create temp dir %s: %v", ErrDownload, d.tempDir, err)
	}

	outputTemplate := filepath.Join(d.tempDir, "%(id)s.%(ext)s")
	args := []string{
		"--no-playlist",
		"-f", "bestaudio/best",
		"--extract-audio",
		"--audio-format", "mp3",
		"--audio-quality", "192K",
		"-o", outputTemplate,
		"--print", "after_move:filepath",
		"--no-simulate",
		rawURL,
	}

	d.logger.Info("starting audio download", zap.String("url", rawURL))

	output, err := d.runner.Run(ctx, d.binary, args...)
	if err != nil {
		d.logger.Error("yt-dlp failed",
			zap.String("url", rawURL),
			zap.ByteString("output", output),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %v", ErrInvalidSource, err)
	}

	artifact := lastLine(string(output))
	if artifact == "" {
		return "", fmt.Errorf("%w: yt-dlp did not report an output file", ErrDownload)
	}

	// The downloader is pinned to mp3; anything else is a loud failure.
	if !strings.EqualFold(filepath.Ext(artifact), ".mp3") {
		os.Remove(artifact)
		return "", fmt.Errorf("%w: expected mp3 artifact, got %s", ErrDownload, filepath.Ext(artifact))
	}

	if _, err := os.Stat(artifact); err != nil {
		return "", fmt.Errorf("%w: reported artifact missing: %v", ErrDownload, err)
	}

	d.logger.Info("finished audio download",
		zap.String("url", rawURL),
		zap.String("artifact", artifact),
	)
	return artifact, nil
}

// ResolveTitle scrapes the watch page's og:title when the caller supplied no
// title of its own. Any failure falls back to a label derived from the URL.
func (d *YtDlp) ResolveTitle(ctx context.Context, rawURL string) string {
	fallback := "YouTube Video: " + rawURL

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fallback
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		d.logger.Warn("failed to fetch page for title", zap.String("url", rawURL), zap.Error(err))
		return fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fallback
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return fallback
	}

	if title, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && strings.TrimSpace(title) != "" {
		return strings.TrimSpace(title)
	}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return fallback
}

// Cleanup removes a transient artifact. A file that is already absent is not
// an error; any other failure is logged and swallowed.
func Cleanup(path string, logger *zap.Logger) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Error("failed to clean up temporary file",
			zap.String("path", path),
			zap.Error(err),
		)
		return
	}
	logger.Info("cleaned up temporary file", zap.String("path", path))
}

func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSource, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s", ErrInvalidSource, rawURL)
	}
	return nil
}

func lastLine(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
