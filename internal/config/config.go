package config

import (
	"fmt"
	"os"
	"strconv"

	"regatta-tracker/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	DBPath     string
	ServerPort string
	LogLevel   string

	// ModelPath points at the ONNX digit-classification model loaded once at
	// process start.
	ModelPath string

	SimilarityCutoff int
	QueueSize        int
	WorkerCount      int

	// OutcomeWebhookURL, when set, receives a POST for every background
	// finish outcome. Empty disables the webhook sink.
	OutcomeWebhookURL string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		DBPath:            getEnv("DB_PATH", "regatta.db"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		ModelPath:         getEnv("MODEL_PATH", ""),
		SimilarityCutoff:  getEnvInt("SIMILARITY_CUTOFF", constants.DefaultSimilarityCutoff),
		QueueSize:         getEnvInt("QUEUE_SIZE", constants.DefaultQueueSize),
		WorkerCount:       getEnvInt("WORKER_COUNT", constants.DefaultWorkerCount),
		OutcomeWebhookURL: getEnv("OUTCOME_WEBHOOK_URL", ""),
	}

	if cfg.ModelPath == "" {
		return nil, fmt.Errorf("MODEL_PATH is required")
	}
	if cfg.SimilarityCutoff < 0 || cfg.SimilarityCutoff > 100 {
		return nil, fmt.Errorf("SIMILARITY_CUTOFF must be between 0 and 100, got %d", cfg.SimilarityCutoff)
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("model_path", cfg.ModelPath).
		Int("similarity_cutoff", cfg.SimilarityCutoff).
		Int("queue_size", cfg.QueueSize).
		Int("worker_count", cfg.WorkerCount).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

var Module = fx.Provide(Load)
