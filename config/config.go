package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	DB          DBConfig
	Redis       RedisConfig
	JWT         JWTConfig
	CORS        CORSConfig
	Appointment AppointmentConfig
	Pagination  PaginationConfig
}

type AppConfig struct {
	Host     string
	Port     string
	Env      string
	Debug    bool
	LogLevel string
}

type DBConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	TimeZone     string
	MaxIdleConns int
	MaxOpenConns int
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	Algorithm    string
	AccessExpiry time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type AppointmentConfig struct {
	// StrictTransitions rejects status changes outside the legal lifecycle edges.
	StrictTransitions bool
}

type PaginationConfig struct {
	MaxLimit int
}

var supportedAlgorithms = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
}

// LoadConfig reads an optional .env file and the process environment.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_HOST", "0.0.0.0")
	v.SetDefault("APP_PORT", "8000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_DEBUG", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_ALGORITHM", "HS256")
	v.SetDefault("JWT_ACCESS_EXPIRY", "24h")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("APPOINTMENT_STRICT_TRANSITIONS", false)
	v.SetDefault("PAGINATION_MAX_LIMIT", 100)

	// A missing .env is fine, the environment alone is enough.
	_ = v.ReadInConfig()

	accessExpiry, err := time.ParseDuration(v.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 24 * time.Hour
	}
	if minutes := v.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES"); minutes > 0 {
		accessExpiry = time.Duration(minutes) * time.Minute
	}

	cfg := &Config{
		App: AppConfig{
			Host:     v.GetString("APP_HOST"),
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			Debug:    v.GetBool("APP_DEBUG"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetString("DB_PORT"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			Name:         v.GetString("DB_NAME"),
			SSLMode:      v.GetString("DB_SSLMODE"),
			TimeZone:     v.GetString("DB_TIMEZONE"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			Algorithm:    strings.ToUpper(v.GetString("JWT_ALGORITHM")),
			AccessExpiry: accessExpiry,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Appointment: AppointmentConfig{
			StrictTransitions: v.GetBool("APPOINTMENT_STRICT_TRANSITIONS"),
		},
		Pagination: PaginationConfig{
			MaxLimit: v.GetInt("PAGINATION_MAX_LIMIT"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects configurations the server must not start with.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if !supportedAlgorithms[c.JWT.Algorithm] {
		return fmt.Errorf("JWT_ALGORITHM must be one of HS256, HS384, HS512, got %q", c.JWT.Algorithm)
	}
	if c.JWT.AccessExpiry <= 0 {
		return fmt.Errorf("JWT_ACCESS_EXPIRY must be positive")
	}
	if c.Pagination.MaxLimit < 1 {
		return fmt.Errorf("PAGINATION_MAX_LIMIT must be at least 1, got %d", c.Pagination.MaxLimit)
	}
	return nil
}

func (c *Config) IsDev() bool {
	return c.App.Env == "development"
}

func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.App.Host, c.App.Port)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
