package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	Worker    WorkerConfig
	Sources   SourcesConfig
	Fetch     FetchConfig
	Export    ExportConfig
	Scheduler SchedulerConfig
	Notify    NotifyConfig
	DB        DatabaseConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Host           string
	Port           int
	RateLimitRPS   int
	RateLimitBurst int
}

type WorkerConfig struct {
	Count      int
	BufferSize int
}

// SourcesConfig toggles the scraper sources. A source with an empty URL
// serves its built-in sample dataset; setting a URL switches it to a live
// JSON fetch.
type SourcesConfig struct {
	WHOEnabled         bool
	WHOURL             string
	CDCEnabled         bool
	CDCURL             string
	LocalHealthEnabled bool
	LocalHealthURL     string
	FetchTimeout       time.Duration
}

// FetchConfig bounds the simulated latency of the view-model fetch layer.
type FetchConfig struct {
	Latency time.Duration
}

type ExportConfig struct {
	Dir   string
	Delay time.Duration
}

type SchedulerConfig struct {
	Enabled        bool
	PipelineSpec   string
	RiskReportSpec string
}

// NotifyConfig shapes the notification queue and the optional SMTP sink.
// SMTP delivery stays off unless a host is configured.
type NotifyConfig struct {
	QueueSize int
	TTL       time.Duration
	SMTPHost  string
	SMTPPort  int
	SMTPUser  string
	SMTPPass  string
	EmailFrom string
	EmailTo   string
}

type DatabaseConfig struct {
	Path string
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "localhost"),
			Port:           getEnvInt("PORT", 3001),
			RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
			RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		},
		Worker: WorkerConfig{
			Count:      getEnvInt("WORKER_COUNT", 2),
			BufferSize: getEnvInt("WORKER_BUFFER_SIZE", 20),
		},
		Sources: SourcesConfig{
			WHOEnabled:         getEnvBool("WHO_ENABLED", true),
			WHOURL:             getEnv("WHO_URL", ""),
			CDCEnabled:         getEnvBool("CDC_ENABLED", true),
			CDCURL:             getEnv("CDC_URL", ""),
			LocalHealthEnabled: getEnvBool("LOCAL_HEALTH_ENABLED", true),
			LocalHealthURL:     getEnv("LOCAL_HEALTH_URL", ""),
			FetchTimeout:       getEnvDuration("SOURCE_FETCH_TIMEOUT", 15*time.Second),
		},
		Fetch: FetchConfig{
			Latency: getEnvDuration("FETCH_LATENCY", 150*time.Millisecond),
		},
		Export: ExportConfig{
			Dir:   getEnv("EXPORT_DIR", "./exports"),
			Delay: getEnvDuration("EXPORT_DELAY", 200*time.Millisecond),
		},
		Scheduler: SchedulerConfig{
			Enabled:        getEnvBool("SCHEDULER_ENABLED", true),
			PipelineSpec:   getEnv("PIPELINE_CRON", "0 */6 * * *"),
			RiskReportSpec: getEnv("RISK_REPORT_CRON", "0 0 * * *"),
		},
		Notify: NotifyConfig{
			QueueSize: getEnvInt("NOTIFY_QUEUE_SIZE", 50),
			TTL:       getEnvDuration("NOTIFY_TTL", 10*time.Second),
			SMTPHost:  getEnv("SMTP_HOST", ""),
			SMTPPort:  getEnvInt("SMTP_PORT", 587),
			SMTPUser:  getEnv("SMTP_USER", ""),
			SMTPPass:  getEnv("SMTP_PASS", ""),
			EmailFrom: getEnv("EMAIL_FROM", ""),
			EmailTo:   getEnv("EMAIL_TO", ""),
		},
		DB: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/pulseguard.db"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Server.RateLimitRPS < 1 || c.Server.RateLimitBurst < 1 {
		return fmt.Errorf("rate limit rps and burst must be at least 1")
	}

	if c.Worker.Count < 1 {
		return fmt.Errorf("worker count must be at least 1")
	}

	if c.Fetch.Latency < 0 {
		return fmt.Errorf("fetch latency must not be negative")
	}

	if c.Notify.QueueSize < 1 {
		return fmt.Errorf("notification queue size must be at least 1")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
