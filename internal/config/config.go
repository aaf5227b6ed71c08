package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrUnknownStorageDriver        = errors.New("unknown storage driver")
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env      string   `mapstructure:"env"`      // current application environment (local, dev, production)
	Storage  Storage  `mapstructure:"storage"`  // key-value store selection
	DB       DB       `mapstructure:"database"` // PostgreSQL settings for the postgres driver
	Telegram Telegram `mapstructure:"-"`        // bot credentials loaded from environment
	Quiz     Quiz     `mapstructure:"quiz"`     // quiz defaults
	Ingest   Ingest   `mapstructure:"ingest"`   // vocabulary ingest options
	Reminder Reminder `mapstructure:"reminder"` // practice reminder schedule
}

// Storage selects where state is persisted.
type Storage struct {
	Driver     string `mapstructure:"driver"`      // memory, sqlite or postgres
	SQLitePath string `mapstructure:"sqlite_path"` // database file for the sqlite driver
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Telegram holds the bot token and the single chat the bot serves.
type Telegram struct {
	APIToken string
	ChatID   int64
}

// Quiz holds defaults used until the learner changes a setting.
type Quiz struct {
	AdvanceDelay     time.Duration `mapstructure:"advance_delay"`      // pause between a correct answer and the next stage
	NumStages        int           `mapstructure:"num_stages"`         // stages per question
	HardPhoneticMode bool          `mapstructure:"hard_phonetic_mode"` // tone variations as distractors
	ContextRadius    int           `mapstructure:"context_radius"`     // characters kept around a context match
}

// Ingest configures vocabulary ingestion.
type Ingest struct {
	CJKBoundaries bool          `mapstructure:"cjk_boundaries"` // Han and Kana neighbours delimit words
	HTTPTimeout   time.Duration `mapstructure:"http_timeout"`   // timeout for fetching source URLs
	MaxBodyBytes  int64         `mapstructure:"max_body_bytes"` // size limit for fetched pages
}

// Reminder configures the practice reminder job.
type Reminder struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"` // cron spec, e.g. "0 19 * * *"
	Timezone string `mapstructure:"timezone"` // "Local", IANA name or UTC offset
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Validate checks that the bot credentials are present.
func (t Telegram) Validate() error {
	if t.APIToken == "" || t.ChatID == 0 {
		return fmt.Errorf("%w: TELEGRAM_API_TOKEN and TELEGRAM_CHAT_ID", ErrMissingEnvironmentVariables)
	}
	return nil
}

// Load reads configuration from configDir/config.yaml, a .env file and environment variables.
// An empty configDir means ./config.
func Load(configDir string) (*Config, error) {
	// Load .env into the process environment if present.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	if configDir == "" {
		configDir = "./config"
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.sqlite_path", "quizzboi.db")
	v.SetDefault("database.max_connections", 5)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("quiz.advance_delay", "400ms")
	v.SetDefault("quiz.num_stages", 3)
	v.SetDefault("quiz.hard_phonetic_mode", false)
	v.SetDefault("quiz.context_radius", 25)
	v.SetDefault("ingest.cjk_boundaries", true)
	v.SetDefault("ingest.http_timeout", "30s")
	v.SetDefault("ingest.max_body_bytes", 10<<20)
	v.SetDefault("reminder.enabled", true)
	v.SetDefault("reminder.schedule", "0 19 * * *")
	v.SetDefault("reminder.timezone", "Local")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("telegram_chat_id", "TELEGRAM_CHAT_ID")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	switch cfg.Storage.Driver {
	case DriverMemory, DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorageDriver, cfg.Storage.Driver)
	}

	// Load sensitive values from environment variables.
	cfg.Telegram.APIToken = v.GetString("telegram_api_token")
	cfg.Telegram.ChatID = v.GetInt64("telegram_chat_id")
	cfg.DB.URL = v.GetString("database_url")

	return &cfg, nil
}
