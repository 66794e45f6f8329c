package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - optional integrations (AMQP, Redis, OAuth providers) are disabled when left empty
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Cookie      CookieConfig
	Reservation ReservationConfig
	OAuth       OAuthConfig
	AMQP        AMQPConfig
	Redis       RedisConfig
	RateLimit   RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Lima"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"PET"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
}

type JWTConfig struct {
	Secret              string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// ReservationConfig holds the single timezone policy applied to reservation
// timestamps, created_at stamps and report date grouping. Fixed offset, no DST.
type ReservationConfig struct {
	TimeZone       string `envconfig:"RESERVATION_TIMEZONE" default:"PET"`
	TimeZoneOffset int    `envconfig:"RESERVATION_TIMEZONE_OFFSET" default:"-18000"`
}

type OAuthConfig struct {
	GoogleClientID        string `envconfig:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret    string `envconfig:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL     string `envconfig:"GOOGLE_REDIRECT_URL" default:"http://localhost:8080/api/auth/google/callback"`
	MicrosoftClientID     string `envconfig:"MICROSOFT_CLIENT_ID"`
	MicrosoftClientSecret string `envconfig:"MICROSOFT_CLIENT_SECRET"`
	MicrosoftTenant       string `envconfig:"MICROSOFT_TENANT" default:"common"`
	MicrosoftRedirectURL  string `envconfig:"MICROSOFT_REDIRECT_URL" default:"http://localhost:8080/api/auth/microsoft/callback"`
	SuccessRedirectURL    string `envconfig:"OAUTH_SUCCESS_REDIRECT_URL"`

	StateTTL time.Duration `envconfig:"OAUTH_STATE_TTL" default:"10m"`
}

type AMQPConfig struct {
	URL      string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"estaciona.events"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RateLimitConfig struct {
	LoginCapacity      int     `envconfig:"LOGIN_RATE_LIMIT_CAPACITY" default:"10"`
	LoginRefillPerSec  float64 `envconfig:"LOGIN_RATE_LIMIT_REFILL_PER_SEC" default:"0.2"`
	LoginKeyTTLSeconds int     `envconfig:"LOGIN_RATE_LIMIT_KEY_TTL" default:"600"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c OAuthConfig) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

func (c OAuthConfig) MicrosoftEnabled() bool {
	return c.MicrosoftClientID != "" && c.MicrosoftClientSecret != ""
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env file not loaded", "error", err.Error())
	}

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
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Lima",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "PET",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -18000,
		},
		JWT: JWTConfig{
			Secret:              "test-secret-key-for-jwt-signing",
			AccessTokenDuration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Reservation: ReservationConfig{
			TimeZone:       "PET",
			TimeZoneOffset: -18000,
		},
		OAuth: OAuthConfig{
			StateTTL: 10 * time.Minute,
		},
		RateLimit: RateLimitConfig{
			LoginCapacity:      10,
			LoginRefillPerSec:  0.2,
			LoginKeyTTLSeconds: 600,
		},
	}
}
