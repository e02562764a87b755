// Package config loads service configuration from .env, an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	StorageGCS      = "gcs"
	StorageDatabase = "database"
)

// Completion providers
const (
	ProviderOpenAI   = "openai"
	ProviderGoogleAI = "googleai"
)

var (
	// ErrMissingJWTSecret is returned when no secret is available to verify session tokens.
	ErrMissingJWTSecret = errors.New("SUPABASE_JWT_SECRET is not configured")
	// ErrUnknownStorageBackend is returned for a STORAGE_BACKEND other than gcs or database.
	ErrUnknownStorageBackend = errors.New("unknown storage backend")
	// ErrMissingBucket is returned when the gcs backend is selected without a bucket.
	ErrMissingBucket = errors.New("GCS_BUCKET is required for the gcs storage backend")
	// ErrUnknownProvider is returned for an unsupported COMPLETION_PROVIDER.
	ErrUnknownProvider = errors.New("unknown completion provider")
)

// DBConfig holds the configuration parameters for connecting to a database.
type DBConfig struct {
	Host          string `yaml:"host"`
	Port          string `yaml:"port"`
	User          string `yaml:"user"`
	Password      string `yaml:"password"`
	DBName        string `yaml:"name"`
	ConnectionStr string `yaml:"connection_str"`
	UseConnStr    bool   `yaml:"use_connection_str"`
}

// AuthConfig describes how session tokens issued by the identity provider are verified.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
	Issuer    string `yaml:"issuer"`
	Audience  string `yaml:"audience"`
}

// IdentityConfig points at the hosted identity/database service.
type IdentityConfig struct {
	URL     string `yaml:"url"`
	AnonKey string `yaml:"anon_key"`
}

// StorageConfig selects and configures the object storage backend.
type StorageConfig struct {
	Backend         string `yaml:"backend"`
	Bucket          string `yaml:"bucket"`
	CredentialsFile string `yaml:"credentials_file"`
	// PublicBaseURL is prefixed to database-stored object keys to build retrievable URLs.
	PublicBaseURL string `yaml:"public_base_url"`
}

// CompletionConfig configures the text-completion API used for cover letters.
type CompletionConfig struct {
	Provider   string        `yaml:"provider"`
	APIKey     string        `yaml:"api_key"`
	Model      string        `yaml:"model"`
	BaseURL    string        `yaml:"base_url"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// Config is the full service configuration.
type Config struct {
	Port         int              `yaml:"port"`
	AllowOrigins []string         `yaml:"allow_origins"`
	DB           DBConfig         `yaml:"database"`
	Auth         AuthConfig       `yaml:"auth"`
	Identity     IdentityConfig   `yaml:"identity"`
	Storage      StorageConfig    `yaml:"storage"`
	Completion   CompletionConfig `yaml:"completion"`
	RateLimit    uint             `yaml:"rate_limit"`
	AuthLog      bool             `yaml:"auth_log"`
	DevTooling   bool             `yaml:"dev_tooling"`
}

// Load reads .env, then the YAML file named by CONFIG_FILE (default configs/config.yaml)
// and finally applies environment overrides. The result is validated.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "configs/config.yaml"
	}

	cfg := &Config{}
	if err := cfg.readYAML(path); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readYAML(path string) error {
	// #nosec G304 -- path comes from operator configuration
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Port = port
	}
	if v := os.Getenv("ALLOW_ORIGIN"); v != "" {
		c.AllowOrigins = strings.Split(v, ",")
	}

	setString(&c.DB.Host, "DB_HOST")
	setString(&c.DB.Port, "DB_PORT")
	setString(&c.DB.User, "DB_USERNAME")
	setString(&c.DB.Password, "DB_PASSWORD")
	setString(&c.DB.DBName, "DB_DATABASE")
	setString(&c.DB.ConnectionStr, "DB_CONNECTION_STR")
	if err := setBool(&c.DB.UseConnStr, "USE_CONNECTION_STR"); err != nil {
		return err
	}

	setString(&c.Identity.URL, "SUPABASE_URL")
	setString(&c.Identity.AnonKey, "SUPABASE_ANON_KEY")
	setString(&c.Auth.JWTSecret, "SUPABASE_JWT_SECRET")
	setString(&c.Auth.Issuer, "JWT_ISSUER")
	setString(&c.Auth.Audience, "JWT_AUDIENCE")

	setString(&c.Storage.Backend, "STORAGE_BACKEND")
	setString(&c.Storage.Bucket, "GCS_BUCKET")
	setString(&c.Storage.CredentialsFile, "GCS_CREDENTIALS_FILE")
	setString(&c.Storage.PublicBaseURL, "PUBLIC_BASE_URL")

	setString(&c.Completion.Provider, "COMPLETION_PROVIDER")
	setString(&c.Completion.APIKey, "OPENAI_API_KEY")
	setString(&c.Completion.Model, "OPENAI_MODEL")
	setString(&c.Completion.BaseURL, "OPENAI_BASE_URL")
	if v := os.Getenv("COMPLETION_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid COMPLETION_TIMEOUT %q: %w", v, err)
		}
		c.Completion.Timeout = d
	}

	if v := os.Getenv("RATE_LIMIT_REQUESTS_PER_SECOND"); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil && n > 0 {
			c.RateLimit = uint(n)
		}
	}
	if err := setBool(&c.AuthLog, "LOGGING"); err != nil {
		return err
	}
	return setBool(&c.DevTooling, "DEV_TOOLING")
}

func (c *Config) setDefaults() {
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = StorageDatabase
	}
	if c.Storage.PublicBaseURL == "" {
		c.Storage.PublicBaseURL = fmt.Sprintf("http://localhost:%d", c.Port)
	}
	c.Storage.PublicBaseURL = strings.TrimRight(c.Storage.PublicBaseURL, "/")
	if c.Completion.Provider == "" {
		c.Completion.Provider = ProviderOpenAI
	}
	if c.Completion.Model == "" {
		c.Completion.Model = "gpt-4"
	}
	if c.Completion.Timeout == 0 {
		c.Completion.Timeout = 60 * time.Second
	}
	if c.Completion.MaxRetries == 0 {
		c.Completion.MaxRetries = 1
	}
	if c.RateLimit == 0 {
		c.RateLimit = 5
	}
	if c.Auth.Audience == "" {
		c.Auth.Audience = "authenticated"
	}
	if c.Auth.Issuer == "" && c.Identity.URL != "" {
		c.Auth.Issuer = strings.TrimRight(c.Identity.URL, "/") + "/auth/v1"
	}
}

// Validate reports configuration that would otherwise leave a component silently inert.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	switch c.Storage.Backend {
	case StorageDatabase:
	case StorageGCS:
		if c.Storage.Bucket == "" {
			return ErrMissingBucket
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorageBackend, c.Storage.Backend)
	}
	switch c.Completion.Provider {
	case ProviderOpenAI, ProviderGoogleAI:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Completion.Provider)
	}
	return nil
}

// DSN returns the PostgreSQL connection string.
func (d DBConfig) DSN() (string, error) {
	if d.UseConnStr {
		if d.ConnectionStr == "" {
			return "", errors.New("DB_CONNECTION_STR is empty")
		}
		return d.ConnectionStr, nil
	}
	if d.Host == "" || d.Port == "" || d.User == "" || d.Password == "" || d.DBName == "" {
		return "", errors.New("database configuration is incomplete")
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", d.User, d.Password, d.Host, d.Port, d.DBName), nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s environment variable is invalid: %w", key, err)
	}
	*dst = b
	return nil
}
