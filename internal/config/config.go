package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/flowboard/flowboard-api/internal/constants"
)

// DefaultJWTSecret is used when JWT_SECRET is unset. It must not reach production.
const DefaultJWTSecret = "default-secret-key-change-me"

// ErrDefaultSecretInRelease rejects release mode with the default signing secret.
var ErrDefaultSecretInRelease = errors.New("JWT_SECRET must be set when GIN_MODE=release")

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Chatbot  ChatbotConfig
	Logging  LoggingConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	// Path is only used by the sqlite driver.
	Path string
}

type AuthConfig struct {
	JWTSecret string
	JWTExpiry time.Duration
}

type ChatbotConfig struct {
	Provider     string
	APIURL       string
	APIKey       string
	Timeout      time.Duration
	OpenAIAPIKey string
	Model        string
}

type LoggingConfig struct {
	Level string
	File  string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return &Config{
		Server: ServerConfig{
			Port:            v.GetString("SERVER_PORT"),
			GinMode:         v.GetString("GIN_MODE"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(v.GetString("DB_DRIVER")),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			Path:     v.GetString("DB_PATH"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
			JWTExpiry: v.GetDuration("JWT_EXPIRY"),
		},
		Chatbot: ChatbotConfig{
			Provider:     strings.ToLower(v.GetString("CHATBOT_PROVIDER")),
			APIURL:       v.GetString("CHATBOT_API_URL"),
			APIKey:       v.GetString("CHATBOT_API_KEY"),
			Timeout:      v.GetDuration("CHATBOT_TIMEOUT"),
			OpenAIAPIKey: v.GetString("OPENAI_API_KEY"),
			Model:        v.GetString("CHATBOT_MODEL"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			File:  v.GetString("LOG_FILE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}
}

// UsesDefaultSecret reports whether tokens are signed with DefaultJWTSecret.
func (a AuthConfig) UsesDefaultSecret() bool {
	return a.JWTSecret == DefaultJWTSecret
}

// Validate rejects settings the server must not start with.
func (c *Config) Validate() error {
	if c.Server.GinMode == "release" && c.Auth.UsesDefaultSecret() {
		return ErrDefaultSecretInRelease
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)

	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "flowboard")
	v.SetDefault("DB_PASSWORD", "flowboard")
	v.SetDefault("DB_NAME", "flowboard")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_PATH", "flowboard.db")

	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("JWT_EXPIRY", constants.DefaultTokenTTL)

	v.SetDefault("CHATBOT_PROVIDER", "http")
	v.SetDefault("CHATBOT_API_URL", "")
	v.SetDefault("CHATBOT_API_KEY", "")
	v.SetDefault("CHATBOT_TIMEOUT", constants.DefaultChatbotTimeout)
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("CHATBOT_MODEL", "gpt-4o")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")

	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
