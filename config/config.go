package config

import (
	"fmt"
	"time"

	"devtrack-backend/storage"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root application configuration, loaded from the environment
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Gemini   GeminiConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port         string        `env:"PORT" env-default:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" env-default:"30s"`
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	URL string `env:"DATABASE_URL" env-required:"true"`
}

// AuthConfig holds session token settings
type AuthConfig struct {
	JWTSecret    string        `env:"JWT_SECRET" env-required:"true"`
	TokenTTL     time.Duration `env:"AUTH_TOKEN_TTL" env-default:"168h"`
	SecureCookie bool          `env:"AUTH_SECURE_COOKIE" env-default:"false"`
}

// StorageConfig holds snapshot export storage settings
type StorageConfig struct {
	Type         string `env:"STORAGE_TYPE" env-default:"local"`
	LocalPath    string `env:"STORAGE_LOCAL_PATH" env-default:"./storage/exports"`
	S3Bucket     string `env:"AWS_S3_BUCKET"`
	S3Region     string `env:"AWS_REGION" env-default:"us-east-1"`
	AWSAccessKey string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretKey string `env:"AWS_SECRET_ACCESS_KEY"`
}

// GeminiConfig holds the optional insight generation settings
type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"GEMINI_MODEL" env-default:"gemini-1.5-flash"`
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Storage.Type == string(storage.StorageTypeS3) && c.Storage.S3Bucket == "" {
		return fmt.Errorf("AWS_S3_BUCKET is required when STORAGE_TYPE=s3")
	}
	return nil
}

// StorageSettings converts the loaded settings into the storage package's form
func (c *Config) StorageSettings() storage.StorageConfig {
	return storage.StorageConfig{
		Type:         storage.StorageType(c.Storage.Type),
		LocalPath:    c.Storage.LocalPath,
		S3Bucket:     c.Storage.S3Bucket,
		S3Region:     c.Storage.S3Region,
		AWSAccessKey: c.Storage.AWSAccessKey,
		AWSSecretKey: c.Storage.AWSSecretKey,
	}
}
