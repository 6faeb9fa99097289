package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env       string `envconfig:"APP_ENV" default:"development"`
	Port      int    `envconfig:"APP_PORT" default:"8080"`
	Namespace string `envconfig:"API_NAMESPACE" default:"sfs-hr/v1/dashboard"`
	DB        DBConfig
	Redis     RedisConfig
	Limiter   RateLimiterConfig
	CORS      CORSConfig
	Session   SessionConfig
	Site      SiteConfig
	Search    SearchConfig
	Fetch     FetchConfig
	Workflow  WorkflowConfig
}

// database configuration
type DBConfig struct {
	DSN         string        `envconfig:"DATABASE_URL" required:"true"`
	MaxConns    int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MaxIdleTime time.Duration `envconfig:"DB_MAX_IDLE_TIME" default:"15m"`
	MaxLifetime time.Duration `envconfig:"DB_MAX_LIFETIME" default:"1h"`
}

// redis configuration, an empty address disables the forms cache
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	FormsTTL time.Duration `envconfig:"FORMS_CACHE_TTL" default:"5m"`
}

// rate limiting configuration
type RateLimiterConfig struct {
	RPS     float64 `envconfig:"RATE_LIMIT_RPS" default:"10"`
	Burst   int     `envconfig:"RATE_LIMIT_BURST" default:"20"`
	Enabled bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// session token configuration
type SessionConfig struct {
	Secret string        `envconfig:"JWT_SECRET" required:"true"`
	TTL    time.Duration `envconfig:"SESSION_TTL" default:"12h"`
}

// site URLs used to build links
type SiteConfig struct {
	HomeURL      string `envconfig:"SITE_HOME_URL" default:"http://localhost:8080"`
	AdminURL     string `envconfig:"SITE_ADMIN_URL" default:"http://localhost:8080/wp-admin/"`
	SectionsFile string `envconfig:"SECTIONS_FILE"`
}

// entry search configuration
type SearchConfig struct {
	FormConcurrency int `envconfig:"SEARCH_FORM_CONCURRENCY" default:"4"`
	FormPageSize    int `envconfig:"SEARCH_FORM_PAGE_SIZE" default:"200"`
}

// outbound fetch configuration
type FetchConfig struct {
	ServiceIcons bool          `envconfig:"SERVICE_ICON_FETCH" default:"false"`
	Timeout      time.Duration `envconfig:"FETCH_TIMEOUT" default:"5s"`
	UserAgent    string        `envconfig:"FETCH_USER_AGENT" default:"SimpleDashboard/1.0"`
}

// workflow inbox configuration
type WorkflowConfig struct {
	Enabled bool `envconfig:"WORKFLOW_ENABLED" default:"false"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadDB reads only the database settings, for tools that never serve HTTP.
func LoadDB() (DBConfig, error) {
	var db DBConfig
	if err := envconfig.Process("", &db); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process database config: %w", err)
	}
	if db.MaxConns < 1 {
		return DBConfig{}, fmt.Errorf("DB_MAX_CONNS must be at least 1")
	}
	return db, nil
}

// LoadRedis reads only the redis settings.
func LoadRedis() (RedisConfig, error) {
	var rc RedisConfig
	if err := envconfig.Process("", &rc); err != nil {
		return RedisConfig{}, fmt.Errorf("failed to process redis config: %w", err)
	}
	return rc, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if strings.Trim(c.Namespace, "/") == "" {
		return fmt.Errorf("API_NAMESPACE must not be empty")
	}
	if c.DB.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1")
	}
	if c.Limiter.RPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be non-negative")
	}
	if c.Limiter.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
	}
	if len(c.Session.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	for name, raw := range map[string]string{"SITE_HOME_URL": c.Site.HomeURL, "SITE_ADMIN_URL": c.Site.AdminURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL (got %q)", name, raw)
		}
	}
	if c.Search.FormConcurrency < 1 {
		return fmt.Errorf("SEARCH_FORM_CONCURRENCY must be at least 1")
	}
	if c.Search.FormPageSize < 1 {
		return fmt.Errorf("SEARCH_FORM_PAGE_SIZE must be at least 1")
	}
	if len(c.GetCORSOrigins()) == 0 {
		return fmt.Errorf("at least one trusted origin must be specified")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// APIPrefix is the route prefix all dashboard endpoints live under.
func (c *Config) APIPrefix() string {
	return "/" + strings.Trim(c.Namespace, "/")
}

// GetCORSOrigins returns the list of trusted CORS origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.TrustedOrigins))
	for _, origin := range c.CORS.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, Namespace=%s, DB.MaxConns=%d, Redis=%t, "+
		"Limiter.RPS=%.2f, Limiter.Burst=%d, Limiter.Enabled=%t, CORS.Origins=%d, "+
		"Session.TTL=%s, Search.FormConcurrency=%d, Workflow=%t}",
		c.Env, c.Port, c.Namespace, c.DB.MaxConns, c.Redis.Addr != "",
		c.Limiter.RPS, c.Limiter.Burst, c.Limiter.Enabled, len(c.GetCORSOrigins()),
		c.Session.TTL, c.Search.FormConcurrency, c.Workflow.Enabled)
}
