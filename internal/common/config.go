package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Bot      BotConfig
	Photos   PhotosConfig
	Reset    ResetConfig
	Weather  WeatherConfig
	Server   ServerConfig
	Sites    SitesConfig
	Users    UsersConfig
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

// BotConfig holds chat-transport configuration
type BotConfig struct {
	Token       string
	PollTimeout time.Duration
}

// PhotosConfig holds photo content store configuration
type PhotosConfig struct {
	Dir     string
	Workers int
	Quality float32
}

// ResetConfig holds daily reset scheduling configuration
type ResetConfig struct {
	At       string // wall-clock HH:MM in Timezone
	Timezone string
}

// WeatherConfig holds forecast lookup configuration
type WeatherConfig struct {
	APIKey   string
	CacheTTL time.Duration
	Timeout  time.Duration
}

// ServerConfig holds the admin gRPC listener configuration
type ServerConfig struct {
	GRPCAddr string
}

// SitesConfig holds the site directory overrides file location
type SitesConfig struct {
	OverridesPath string
}

// UsersConfig maps chat user ids to roles. Role resolution is a lookup in
// these maps, nothing more.
type UsersConfig struct {
	Devs      map[int64]string
	Directors map[int64]string
	Employees map[int64]string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", "file:mowbot.db?_pragma=busy_timeout(5000)"),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 10),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 2),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Bot: BotConfig{
			Token:       getEnv("TELEGRAM_BOT_TOKEN", ""),
			PollTimeout: getEnvAsDuration("BOT_POLL_TIMEOUT", 30*time.Second),
		},
		Photos: PhotosConfig{
			Dir:     getEnv("PHOTO_DIR", "./photos"),
			Workers: getEnvAsInt("PHOTO_WORKERS", 4),
			Quality: getEnvAsFloat32("PHOTO_QUALITY", 85),
		},
		Reset: ResetConfig{
			At:       getEnv("RESET_AT", "05:00"),
			Timezone: getEnv("RESET_TZ", "Europe/London"),
		},
		Weather: WeatherConfig{
			APIKey:   getEnv("WEATHER_API_KEY", ""),
			CacheTTL: getEnvAsDuration("WEATHER_CACHE_TTL", 30*time.Minute),
			Timeout:  getEnvAsDuration("WEATHER_TIMEOUT", 10*time.Second),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Sites: SitesConfig{
			OverridesPath: getEnv("SITE_OVERRIDES", "./site_overrides.json"),
		},
		Users: UsersConfig{
			Devs:      getEnvAsUserMap("DEV_USERS"),
			Directors: getEnvAsUserMap("DIRECTOR_USERS"),
			Employees: getEnvAsUserMap("EMPLOYEE_USERS"),
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

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvAsUserMap parses "id=Name,id=Name" pairs, e.g.
// EMPLOYEE_USERS="1672989849=Andy,7747082939=Alex".
func getEnvAsUserMap(key string) map[int64]string {
	out := make(map[int64]string)
	value := os.Getenv(key)
	if value == "" {
		return out
	}
	for _, pair := range strings.Split(value, ",") {
		id, name, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		uid, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
		if err != nil {
			continue
		}
		out[uid] = strings.TrimSpace(name)
	}
	return out
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Bot.Token == "" {
		return NewAppError("CONFIG_ERROR", "TELEGRAM_BOT_TOKEN is required", ErrInvalidInput)
	}
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if _, err := time.LoadLocation(c.Reset.Timezone); err != nil {
		return NewAppError("CONFIG_ERROR", "RESET_TZ is not a valid IANA timezone", err)
	}
	if _, err := ParseClock(c.Reset.At); err != nil {
		return NewAppError("CONFIG_ERROR", "RESET_AT must be HH:MM", err)
	}
	return nil
}

// ParseClock parses a wall-clock "HH:MM" string into hour and minute.
func ParseClock(s string) (struct{ Hour, Minute int }, error) {
	var out struct{ Hour, Minute int }
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return out, ErrInvalidInput
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return out, ErrInvalidInput
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return out, ErrInvalidInput
	}
	out.Hour, out.Minute = h, m
	return out, nil
}
