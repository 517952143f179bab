package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
)

type Config struct {
	Dir             string
	InputPath       string `validate:"required"`
	ReferencePath   string `validate:"required"`
	OutputPath      string `validate:"required"`
	Provider        string `validate:"oneof=anthropic openai gemini"`
	APIKey          string
	Model           string `validate:"required"`
	BaseURL         string `validate:"omitempty,url"`
	MaxTokens       int    `validate:"gt=0"`
	SQLitePath      string
	MetricsTextfile string
	LogLevel        string `validate:"omitempty,oneof=debug info warn error"`
	EnvFile         string // .env file that was loaded, if any
}

var apiKeyEnv = map[string]string{
	ProviderAnthropic: "ANTHROPIC_API_KEY",
	ProviderOpenAI:    "OPENAI_API_KEY",
	ProviderGemini:    "GEMINI_API_KEY",
}

var defaultModels = map[string]string{
	ProviderAnthropic: "claude-sonnet-4-20250514",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderGemini:    "gemini-2.5-flash",
}

// EnvCandidates lists the .env files tried by Load, in order.
func EnvCandidates(dir string) []string {
	return []string{
		filepath.Join(dir, ".env"),
		filepath.Join(dir, "..", "skin-care-addiction", ".env"),
	}
}

// Load reads the first existing .env candidate of dir (process environment
// wins over file values) and builds the configuration from the environment.
// An empty dir means CATALOG_DIR, or the working directory.
func Load(dir string) (*Config, error) {
	if dir == "" {
		dir = os.Getenv("CATALOG_DIR")
	}
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	envFile := ""
	for _, path := range EnvCandidates(dir) {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		envFile = path
		break
	}

	provider := getEnv("LLM_PROVIDER", ProviderAnthropic)
	maxTokens, err := strconv.Atoi(getEnv("LLM_MAX_TOKENS", "1024"))
	if err != nil {
		return nil, fmt.Errorf("invalid LLM_MAX_TOKENS: %w", err)
	}

	cfg := &Config{
		Dir:             dir,
		InputPath:       getEnv("RAW_CSV", filepath.Join(dir, "RawAmazonData.csv")),
		ReferencePath:   getEnv("REFERENCE_CSV", filepath.Join(dir, "skin addiction - Sheet1.csv")),
		OutputPath:      getEnv("OUTPUT_CSV", filepath.Join(dir, "CleanProductData.csv")),
		Provider:        provider,
		APIKey:          os.Getenv(apiKeyEnv[provider]),
		Model:           getEnv("LLM_MODEL", defaultModels[provider]),
		BaseURL:         os.Getenv("LLM_BASE_URL"),
		MaxTokens:       maxTokens,
		SQLitePath:      os.Getenv("OUTPUT_SQLITE"),
		MetricsTextfile: os.Getenv("METRICS_TEXTFILE"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		EnvFile:         envFile,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// HasCredential reports whether generation requests can be made.
func (c *Config) HasCredential() bool {
	return c.APIKey != ""
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
