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
	Env       string
	Port      int
	APIPrefix string

	Database     DatabaseConfig
	Redis        RedisConfig
	JWT          JWTConfig
	CORS         CORSConfig
	Log          LogConfig
	SMS          SMSConfig
	OfferLetters OfferLetterConfig
	Admissions   AdmissionsConfig
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
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// SMSConfig configures the outbound notification gateway.
type SMSConfig struct {
	Enabled  bool
	BaseURL  string
	APIKey   string
	SenderID string
	Timeout  time.Duration
}

// OfferLetterConfig controls offer letter rendering and storage.
type OfferLetterConfig struct {
	StorageDir      string
	SignedURLSecret string
	SignedURLTTL    time.Duration
	BaseURL         string
	SchoolName      string
	SchoolAddress   string
}

// AdmissionsConfig tunes workflow policy and caching.
type AdmissionsConfig struct {
	// AdmitFrom lists the statuses from which the admit transition is legal.
	// The default set is inferred from product usage and kept configurable.
	AdmitFrom           []string
	CollaboratorTimeout time.Duration
	StatsCacheTTL       time.Duration
	StatsCacheEnabled   bool
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
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

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
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{Secret: v.GetString("JWT_SECRET")}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.SMS = SMSConfig{
		Enabled:  v.GetBool("SMS_ENABLED"),
		BaseURL:  v.GetString("SMS_BASE_URL"),
		APIKey:   v.GetString("SMS_API_KEY"),
		SenderID: v.GetString("SMS_SENDER_ID"),
		Timeout:  parseDuration(v.GetString("SMS_TIMEOUT"), 5*time.Second),
	}

	cfg.OfferLetters = OfferLetterConfig{
		StorageDir:      v.GetString("OFFER_LETTER_DIR"),
		SignedURLSecret: v.GetString("OFFER_LETTER_URL_SECRET"),
		SignedURLTTL:    parseDuration(v.GetString("OFFER_LETTER_URL_TTL"), 30*24*time.Hour),
		BaseURL:         v.GetString("OFFER_LETTER_BASE_URL"),
		SchoolName:      v.GetString("SCHOOL_NAME"),
		SchoolAddress:   v.GetString("SCHOOL_ADDRESS"),
	}

	cfg.Admissions = AdmissionsConfig{
		AdmitFrom:           splitAndTrim(v.GetString("ADMISSIONS_ADMIT_FROM")),
		CollaboratorTimeout: parseDuration(v.GetString("ADMISSIONS_COLLABORATOR_TIMEOUT"), 10*time.Second),
		StatsCacheTTL:       parseDuration(v.GetString("ADMISSIONS_STATS_CACHE_TTL"), 5*time.Minute),
		StatsCacheEnabled:   v.GetBool("ADMISSIONS_STATS_CACHE_ENABLED"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "school_admission")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SMS_ENABLED", false)
	v.SetDefault("SMS_TIMEOUT", "5s")

	v.SetDefault("OFFER_LETTER_DIR", "./offer-letters")
	v.SetDefault("OFFER_LETTER_URL_TTL", "720h")
	v.SetDefault("OFFER_LETTER_BASE_URL", "http://localhost:8080/api/v1/letters")
	v.SetDefault("SCHOOL_NAME", "Shree Secondary School")
	v.SetDefault("SCHOOL_ADDRESS", "Kathmandu, Nepal")

	v.SetDefault("ADMISSIONS_ADMIT_FROM", "APPLIED,TESTED,INTERVIEWED")
	v.SetDefault("ADMISSIONS_COLLABORATOR_TIMEOUT", "10s")
	v.SetDefault("ADMISSIONS_STATS_CACHE_TTL", "5m")
	v.SetDefault("ADMISSIONS_STATS_CACHE_ENABLED", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
