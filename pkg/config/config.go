package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Database DatabaseConfig
	Redis    RedisConfig
	Log      LogConfig
	Crawl    CrawlConfig
	AI       AIConfig
	Guides   GuidesConfig
	Metrics  MetricsConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type LogConfig struct {
	Level  string
	Format string
}

// CrawlConfig holds the process-wide crawl tunables shared by every adapter.
type CrawlConfig struct {
	MaxPages       int
	MaxConcurrency int
	MinConcurrency int
	RequestTimeout time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
	SubjectDelay   time.Duration
	VisitedTTL     time.Duration
	UserAgent      string
}

// AIConfig configures the study-guide summarization stage. An empty key list
// is not an error; the pipeline degrades to raw text.
type AIConfig struct {
	APIKeys    []string
	Model      string
	CharBudget int
}

// GuidesConfig controls where generated study-guide PDFs are written.
type GuidesConfig struct {
	OutputDir string
}

// MetricsConfig gates the debug health/metrics listener.
type MetricsConfig struct {
	Enabled bool
	Port    int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Enabled:  v.GetBool("ENABLE_REDIS"),
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Crawl = CrawlConfig{
		MaxPages:       v.GetInt("CRAWL_MAX_PAGES"),
		MaxConcurrency: v.GetInt("CRAWL_MAX_CONCURRENCY"),
		MinConcurrency: v.GetInt("CRAWL_MIN_CONCURRENCY"),
		RequestTimeout: parseDuration(v.GetString("CRAWL_REQUEST_TIMEOUT"), 60*time.Second),
		MaxRetries:     v.GetInt("CRAWL_MAX_RETRIES"),
		RetryDelay:     parseDuration(v.GetString("CRAWL_RETRY_DELAY"), 2*time.Second),
		SubjectDelay:   parseDuration(v.GetString("CRAWL_SUBJECT_DELAY"), 5*time.Second),
		VisitedTTL:     parseDuration(v.GetString("CRAWL_VISITED_TTL"), 12*time.Hour),
		UserAgent:      v.GetString("CRAWL_USER_AGENT"),
	}

	keys := splitAndTrim(v.GetString("GEMINI_API_KEYS"))
	if key := v.GetString("GEMINI_API_KEY"); key != "" {
		keys = append([]string{key}, keys...)
	}
	cfg.AI = AIConfig{
		APIKeys:    keys,
		Model:      v.GetString("GEMINI_MODEL"),
		CharBudget: v.GetInt("AI_CHAR_BUDGET"),
	}

	cfg.Guides = GuidesConfig{
		OutputDir: v.GetString("GUIDES_OUTPUT_DIR"),
	}

	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("ENABLE_METRICS"),
		Port:    v.GetInt("METRICS_PORT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "study_tracker")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("ENABLE_REDIS", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("CRAWL_MAX_PAGES", 30)
	v.SetDefault("CRAWL_MAX_CONCURRENCY", 5)
	v.SetDefault("CRAWL_MIN_CONCURRENCY", 1)
	v.SetDefault("CRAWL_REQUEST_TIMEOUT", "60s")
	v.SetDefault("CRAWL_MAX_RETRIES", 2)
	v.SetDefault("CRAWL_RETRY_DELAY", "2s")
	v.SetDefault("CRAWL_SUBJECT_DELAY", "5s")
	v.SetDefault("CRAWL_VISITED_TTL", "12h")
	v.SetDefault("CRAWL_USER_AGENT", "study-tracker-crawler/1.0")

	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_API_KEYS", "")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("AI_CHAR_BUDGET", 12000)

	v.SetDefault("GUIDES_OUTPUT_DIR", "./guides")

	v.SetDefault("ENABLE_METRICS", false)
	v.SetDefault("METRICS_PORT", 9090)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
