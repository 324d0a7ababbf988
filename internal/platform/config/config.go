package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Snapshot store kinds selectable through SNAPSHOT_STORE.
const (
	StoreFile   = "file"
	StorePgsql  = "pgsql"
	StoreSqlite = "sqlite"
	StoreNone   = "none"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	// Bcrypt hash checked when a manager role logs in. Empty disables the check.
	ManagerPasscodeHash string

	// Persistence
	SnapshotStore   string
	BackupFilePath  string
	DatabaseURL     string
	SqlitePath      string
	PersistDebounce time.Duration
	PersistTimeout  time.Duration
	SeedDemoData    bool

	// AI insight
	GeminiAPIKey      string
	GeminiModel       string
	InsightRatePerMin int

	// Notification fan-out
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	CORSAllowedOrigins []string
	RateLimit          string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "partners-app")
	viper.SetDefault("MANAGER_PASSCODE_HASH", "")
	viper.SetDefault("SNAPSHOT_STORE", StoreFile)
	viper.SetDefault("BACKUP_FILE_PATH", "data/coop_backup.json")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("SQLITE_PATH", "data/coop.db")
	viper.SetDefault("PERSIST_DEBOUNCE", "800ms")
	viper.SetDefault("PERSIST_TIMEOUT", "10s")
	viper.SetDefault("SEED_DEMO_DATA", false)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("INSIGHT_RATE_PER_MIN", 6)
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AMQP_EXCHANGE", "coop.notifications")
	viper.SetDefault("AMQP_QUEUE", "coop.notifications.admin")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = durationOr("JWT_EXPIRY_DURATION", 12*time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.ManagerPasscodeHash = viper.GetString("MANAGER_PASSCODE_HASH")
	if cfg.ManagerPasscodeHash == "" {
		log.Println("Warning: MANAGER_PASSCODE_HASH not set. Manager roles can log in without a passcode.")
	}

	cfg.SnapshotStore = strings.ToLower(viper.GetString("SNAPSHOT_STORE"))
	cfg.BackupFilePath = viper.GetString("BACKUP_FILE_PATH")
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.SqlitePath = viper.GetString("SQLITE_PATH")
	cfg.PersistDebounce = durationOr("PERSIST_DEBOUNCE", 800*time.Millisecond)
	cfg.PersistTimeout = durationOr("PERSIST_TIMEOUT", 10*time.Second)
	cfg.SeedDemoData = viper.GetBool("SEED_DEMO_DATA")

	cfg.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. AI insights will be unavailable.")
	}
	cfg.GeminiModel = viper.GetString("GEMINI_MODEL")
	cfg.InsightRatePerMin = viper.GetInt("INSIGHT_RATE_PER_MIN")

	cfg.AMQPURL = viper.GetString("AMQP_URL")
	cfg.AMQPExchange = viper.GetString("AMQP_EXCHANGE")
	cfg.AMQPQueue = viper.GetString("AMQP_QUEUE")

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, cfg.Validate()
}

// Validate reports inconsistent combinations of settings.
func (c *Config) Validate() error {
	var errs []error
	switch c.SnapshotStore {
	case StoreFile:
		if c.BackupFilePath == "" {
			errs = append(errs, errors.New("BACKUP_FILE_PATH is required when SNAPSHOT_STORE=file"))
		}
	case StorePgsql:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("PGSQL_URL is required when SNAPSHOT_STORE=pgsql"))
		}
	case StoreSqlite:
		if c.SqlitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required when SNAPSHOT_STORE=sqlite"))
		}
	case StoreNone:
	default:
		errs = append(errs, fmt.Errorf("unknown SNAPSHOT_STORE %q", c.SnapshotStore))
	}
	if c.PersistDebounce <= 0 {
		errs = append(errs, errors.New("PERSIST_DEBOUNCE must be positive"))
	}
	if c.PersistTimeout <= 0 {
		errs = append(errs, errors.New("PERSIST_TIMEOUT must be positive"))
	}
	if c.JWTExpiryDuration <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRY_DURATION must be positive"))
	}
	if c.InsightRatePerMin <= 0 {
		errs = append(errs, errors.New("INSIGHT_RATE_PER_MIN must be positive"))
	}
	if len(c.CORSAllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must list at least one origin"))
	}
	if c.RateLimit == "" {
		errs = append(errs, errors.New("RATE_LIMIT is required"))
	}
	if c.IsProduction && c.JWTSecret == defaultJWTSecret {
		errs = append(errs, errors.New("JWT_SECRET must be set in production"))
	}
	return errors.Join(errs...)
}

func durationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
