// Package config loads process configuration from the environment once at
// startup. Gateways and stores receive the resulting struct by reference
// instead of reading globals.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Gateway provider names.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Storage backend names.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config is the explicit configuration passed into the gateways and stores.
type Config struct {
	Host        string
	Port        string
	Environment string

	Provider     string
	Model        string
	GeminiAPIKey string
	OpenAIAPIKey string

	DBBackend   string
	SQLitePath  string
	PostgresDSN string

	YtDlpPath string
	TempDir   string
}

// LoadEnv loads environment variables from a .env file if one exists near
// the working directory. Missing files are fine; system-wide variables may
// already be set.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// Load reads configuration from the environment and validates it, failing
// fast when the selected gateway provider has no credential.
func Load() (*Config, error) {
	cfg := &Config{
		Host:         getEnvOrDefault("HOST", "0.0.0.0"),
		Port:         getEnvOrDefault("PORT", "8080"),
		Environment:  getEnvOrDefault("ENVIRONMENT", "development"),
		Provider:     strings.ToLower(getEnvOrDefault("GATEWAY_PROVIDER", ProviderGemini)),
		Model:        os.Getenv("GATEWAY_MODEL"),
		GeminiAPIKey: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		OpenAIAPIKey: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		DBBackend:    strings.ToLower(getEnvOrDefault("DB_BACKEND", BackendSQLite)),
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		YtDlpPath:    getEnvOrDefault("YTDLP_PATH", "yt-dlp"),
		TempDir:      getEnvOrDefault("TEMP_AUDIO_DIR", "temp_audio"),
	}

	cfg.SQLitePath = os.Getenv("SQLITE_PATH")
	if cfg.SQLitePath == "" {
		projectRoot, err := GetProjectRoot()
		if err != nil {
			projectRoot = "."
		}
		cfg.SQLitePath = filepath.Join(projectRoot, "data", "transcripts.db")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	// Chat always runs through Gemini, so the key is required regardless of
	// which transcription provider is selected.
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY must be set")
	}
	if !strings.HasPrefix(c.GeminiAPIKey, "AIza") {
		return fmt.Errorf("invalid GEMINI_API_KEY format: must start with 'AIza'")
	}

	switch c.Provider {
	case ProviderGemini:
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY must be set when GATEWAY_PROVIDER is %q", ProviderOpenAI)
		}
		if !strings.HasPrefix(c.OpenAIAPIKey, "sk-") {
			return fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
		}
	default:
		return fmt.Errorf("unknown GATEWAY_PROVIDER %q (want %q or %q)", c.Provider, ProviderGemini, ProviderOpenAI)
	}

	switch c.DBBackend {
	case BackendSQLite:
	case BackendPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN must be set when DB_BACKEND is %q", BackendPostgres)
		}
	default:
		return fmt.Errorf("unknown DB_BACKEND %q (want %q or %q)", c.DBBackend, BackendSQLite, BackendPostgres)
	}

	return nil
}

// GetProjectRoot finds the project root directory by looking for go.mod.
func GetProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("project root not found (no go.mod in any parent directory)")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
