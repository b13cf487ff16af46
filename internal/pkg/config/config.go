package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, retry counts, etc.), standard settings
//
// Lock-service credentials are deliberately NOT marked required here: the fake
// client needs no credentials, so presence is validated when the real transport
// is constructed instead.
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Lock   LockConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// Shared secret expected in X-Internal-Token on mutating endpoints.
	InternalToken string `envconfig:"INTERNAL_TOKEN" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Helsinki"`
}

// LockConfig is the connection surface of the keyless-entry provider.
type LockConfig struct {
	BaseURL       string        `envconfig:"LOCK_BASE_URL"`
	APIKey        string        `envconfig:"LOCK_API_KEY"`
	ServiceName   string        `envconfig:"LOCK_SERVICE_NAME" default:"keyless"`
	Timeout       time.Duration `envconfig:"LOCK_TIMEOUT" default:"10s"`
	RetryAttempts int           `envconfig:"LOCK_RETRY_ATTEMPTS" default:"3"`
	// UseFake swaps the real client for the in-memory one (local/dev only).
	UseFake bool `envconfig:"LOCK_USE_FAKE" default:"false"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Internal-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Helsinki"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"7200"` // 2*60*60
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:          "8889", // Test port
			InternalToken: "test-internal-token",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Helsinki",
		},
		Lock: LockConfig{
			BaseURL:       "http://localhost:15800",
			APIKey:        "test-api-key",
			ServiceName:   "keyless",
			Timeout:       2 * time.Second,
			RetryAttempts: 3,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Helsinki",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 7200,
		},
	}
}
