package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"trip-planner-go/pkg/logger"
)

const (
	StoreModeAuto     = "auto"
	StoreModePostgres = "postgres"
	StoreModeLocal    = "local"
)

type Config struct {
	HTTPPort           string `validate:"required,numeric"`
	Env                string `validate:"required"`
	CORSAllowedOrigins []string
	Store              StoreConfig
	Trip               TripConfig
	Seed               SeedConfig
	Dashboard          DashboardConfig
	DB                 DBConfig
}

type StoreConfig struct {
	Mode      string `validate:"oneof=auto postgres local"`
	LocalPath string
}

type TripConfig struct {
	MinDate       string        `validate:"required,datetime=2006-01-02"`
	MaxDate       string        `validate:"required,datetime=2006-01-02"`
	DefaultLength int           `validate:"gtefield=MinLength,ltefield=MaxLength"`
	MinLength     int           `validate:"min=1"`
	MaxLength     int           `validate:"gtefield=MinLength"`
	Roster        []RosterEntry `validate:"dive"`
}

type RosterEntry struct {
	Name     string `validate:"required"`
	Initials string `validate:"required,max=4"`
	Color    string `validate:"required,hexcolor"`
}

type SeedConfig struct {
	Enabled bool
}

type DashboardConfig struct {
	CacheTTL  time.Duration
	CacheSize int64 `validate:"min=1"`
	TopN      int   `validate:"min=1"`
}

type DBConfig struct {
	DSN             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func Load(log logger.Logger) (Config, error) {
	err := loadDotEnv(log)
	if err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	roster, err := parseRoster(getEnv("TRIP_ROSTER", ""))
	if err != nil {
		return Config{}, fmt.Errorf("parse TRIP_ROSTER: %w", err)
	}

	cfg := Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		Store: StoreConfig{
			Mode:      strings.ToLower(getEnv("STORE_MODE", StoreModeAuto)),
			LocalPath: getEnv("LOCAL_STORE_PATH", "data/trip-planner.json"),
		},
		Trip: TripConfig{
			MinDate:       getEnv("TRIP_MIN_DATE", "2026-07-01"),
			MaxDate:       getEnv("TRIP_MAX_DATE", "2026-08-31"),
			DefaultLength: getEnvInt("TRIP_DEFAULT_LENGTH", 14),
			MinLength:     getEnvInt("TRIP_MIN_LENGTH", 7),
			MaxLength:     getEnvInt("TRIP_MAX_LENGTH", 21),
			Roster:        roster,
		},
		Seed: SeedConfig{
			Enabled: getEnvBool("SEED_ENABLED", true),
		},
		Dashboard: DashboardConfig{
			CacheTTL:  getEnvDuration("DASHBOARD_CACHE_TTL", 5*time.Second),
			CacheSize: int64(getEnvInt("DASHBOARD_CACHE_SIZE", 64)),
			TopN:      getEnvInt("DASHBOARD_TOP_N", 5),
		},
		DB: DBConfig{
			DSN:             getEnv("DB_DSN", getEnv("SUPABASE_DB_URL", "")),
			Host:            getEnv("DB_HOST", ""),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "trip_planner"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Trip.MinDate > c.Trip.MaxDate {
		return fmt.Errorf("invalid config: TRIP_MIN_DATE %s is after TRIP_MAX_DATE %s", c.Trip.MinDate, c.Trip.MaxDate)
	}
	if c.Store.Mode == StoreModePostgres && !c.DB.Configured() {
		return fmt.Errorf("invalid config: STORE_MODE=postgres needs DB_DSN, SUPABASE_DB_URL or DB_HOST")
	}
	return nil
}

// ResolvedStoreMode turns auto into postgres when a database is configured and
// local otherwise.
func (c Config) ResolvedStoreMode() string {
	if c.Store.Mode != StoreModeAuto {
		return c.Store.Mode
	}
	if c.DB.Configured() {
		return StoreModePostgres
	}
	return StoreModeLocal
}

// parseRoster reads "Name:Initials:#color" entries separated by commas.
func parseRoster(value string) ([]RosterEntry, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	var roster []RosterEntry
	for _, raw := range strings.Split(value, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		parts := strings.Split(raw, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("entry %q: expected Name:Initials:#color", raw)
		}
		roster = append(roster, RosterEntry{
			Name:     strings.TrimSpace(parts[0]),
			Initials: strings.TrimSpace(parts[1]),
			Color:    strings.TrimSpace(parts[2]),
		})
	}
	return roster, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c DBConfig) Configured() bool {
	return c.DSN != "" || c.Host != ""
}

func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.TimeZone
}
