package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Loader   LoaderConfig
	Ingest   IngestConfig
	Pipeline PipelineConfig
	LLM      LLMConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr      string
	HTTPAddr      string
	UploadDir     string
	MaxUploadSize int64
	QueueWorkers  int
	QueueCapacity int
}

// LoaderConfig holds document-loader configuration (poppler binaries).
type LoaderConfig struct {
	Pdftotext   string
	Pdftoppm    string
	DPI         int
	MaxPages    int
	ExecTimeout time.Duration
	ImagesDir   string
}

// IngestConfig holds watch-folder ingestion settings. Roots uses the form
// "agentID=path;agentID=path"; empty disables watching.
type IngestConfig struct {
	Roots       string
	InitialScan bool
}

// PipelineConfig holds extraction-pipeline behavior flags.
type PipelineConfig struct {
	SkipVisionWhenText bool
	PageConcurrency    int
}

// LLMConfig holds model-call configuration shared across providers.
type LLMConfig struct {
	OpenAIKey    string
	AnthropicKey string
	MistralKey   string
	OllamaURL    string
	Temperature  float32
	CallTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr:      getEnv("GRPC_ADDR", ":8080"),
			HTTPAddr:      getEnv("HTTP_ADDR", ":8081"),
			UploadDir:     getEnv("UPLOAD_DIR", "./tmp/uploads"),
			MaxUploadSize: int64(getEnvAsInt("MAX_UPLOAD_MB", 50)) << 20,
			QueueWorkers:  getEnvAsInt("QUEUE_WORKERS", 2),
			QueueCapacity: getEnvAsInt("QUEUE_CAPACITY", 64),
		},
		Loader: LoaderConfig{
			Pdftotext:   getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:    getEnv("PDFTOPPM_BIN", "pdftoppm"),
			DPI:         getEnvAsInt("RENDER_DPI", 200),
			MaxPages:    getEnvAsInt("RENDER_MAX_PAGES", 0),
			ExecTimeout: getEnvAsDuration("LOADER_EXEC_TIMEOUT", 2*time.Minute),
			ImagesDir:   getEnv("IMAGES_DIR", "./tmp/images"),
		},
		Ingest: IngestConfig{
			Roots:       getEnv("WATCH_ROOTS", ""),
			InitialScan: getEnvAsBool("WATCH_INITIAL_SCAN", false),
		},
		Pipeline: PipelineConfig{
			SkipVisionWhenText: getEnvAsBool("PIPELINE_SKIP_VISION_WHEN_TEXT", false),
			PageConcurrency:    getEnvAsInt("PIPELINE_PAGE_CONCURRENCY", 1),
		},
		LLM: LLMConfig{
			OpenAIKey:    getEnv("OPENAI_API_KEY", ""),
			AnthropicKey: getEnv("ANTHROPIC_API_KEY", ""),
			MistralKey:   getEnv("MISTRAL_API_KEY", ""),
			OllamaURL:    getEnv("OLLAMA_URL", "http://localhost:11434"),
			Temperature:  getEnvAsFloat32("LLM_TEMPERATURE", 0.0),
			CallTimeout:  getEnvAsDuration("LLM_TIMEOUT", 60*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
