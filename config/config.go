package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultSessionSecret = "dev-session-secret-change-me"

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Backend BackendConfig `yaml:"backend"`
	Redis   RedisConfig   `yaml:"redis"`
	Session SessionConfig `yaml:"session"`
	Roster  RosterConfig  `yaml:"roster"`
	Log     LogConfig     `yaml:"log"`
	Tracing TracingConfig `yaml:"tracing"`
	CORS    CORSConfig    `yaml:"cors"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	Mode string `yaml:"mode"`
}

type BackendConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SessionConfig struct {
	Secret     string        `yaml:"secret"`
	CookieName string        `yaml:"cookie_name"`
	TTL        time.Duration `yaml:"ttl"`
	HandoffTTL time.Duration `yaml:"handoff_ttl"`
	Secure     bool          `yaml:"secure"`
}

// RosterConfig holds the instructor lists offered on the registration form.
// They are static configuration of the frontend, never fetched from the backend.
type RosterConfig struct {
	Magistral     []string `yaml:"magistral"`
	Complementary []string `yaml:"complementary"`
}

type LogConfig struct {
	Mode string `yaml:"mode"`
}

type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	ServiceName string  `yaml:"service_name"`
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

var DefaultMagistral = []string{
	"Fernando Castrillón",
	"Paula Jaramillo",
	"Sebastián Montaño",
	"Tomás Rodríguez",
	"Sara Serrano",
}

var DefaultComplementary = []string{
	"Juan Sebastián Arévalo",
	"Nicolás Bello",
	"Sergio Vásquez",
	"Gustavo Castillo",
	"Mariana Crane",
	"Sergio Díaz",
	"María Juliana Otálora",
	"Sofía Ochoa",
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: "8080",
			Mode: "debug",
		},
		Backend: BackendConfig{
			BaseURL: "http://localhost:5000",
			Timeout: 10 * time.Second,
		},
		Redis: RedisConfig{
			Host: "localhost",
			Port: "6379",
		},
		Session: SessionConfig{
			Secret:     defaultSessionSecret,
			CookieName: "ppia_session",
			TTL:        12 * time.Hour,
			HandoffTTL: 5 * time.Minute,
		},
		Roster: RosterConfig{
			Magistral:     append([]string(nil), DefaultMagistral...),
			Complementary: append([]string(nil), DefaultComplementary...),
		},
		Log: LogConfig{Mode: "development"},
		Tracing: TracingConfig{
			ServiceName: "ppia-web",
			SampleRatio: 0.1,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:8080", "http://127.0.0.1:8080"},
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file named by
// CONFIG_FILE, and environment variables, in that order of precedence.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.Server.Host = getEnv("SERVER_HOST", cfg.Server.Host)
	cfg.Server.Port = getEnv("SERVER_PORT", cfg.Server.Port)
	cfg.Server.Mode = getEnv("GIN_MODE", cfg.Server.Mode)

	cfg.Backend.BaseURL = strings.TrimRight(getEnv("BACKEND_URL", cfg.Backend.BaseURL), "/")
	cfg.Backend.Timeout = getEnvAsDuration("BACKEND_TIMEOUT", cfg.Backend.Timeout)

	cfg.Redis.Host = getEnv("REDIS_HOST", cfg.Redis.Host)
	cfg.Redis.Port = getEnv("REDIS_PORT", cfg.Redis.Port)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", cfg.Redis.DB)

	cfg.Session.Secret = getEnv("SESSION_SECRET", cfg.Session.Secret)
	cfg.Session.CookieName = getEnv("SESSION_COOKIE", cfg.Session.CookieName)
	cfg.Session.TTL = getEnvAsDuration("SESSION_TTL", cfg.Session.TTL)
	cfg.Session.HandoffTTL = getEnvAsDuration("HANDOFF_TTL", cfg.Session.HandoffTTL)
	cfg.Session.Secure = getEnvAsBool("SESSION_SECURE", cfg.Session.Secure)

	cfg.Roster.Magistral = getEnvAsList("ROSTER_MAGISTRAL", cfg.Roster.Magistral)
	cfg.Roster.Complementary = getEnvAsList("ROSTER_COMPLEMENTARY", cfg.Roster.Complementary)

	cfg.Log.Mode = getEnv("LOG_MODE", cfg.Log.Mode)

	cfg.Tracing.Enabled = getEnvAsBool("OTEL_ENABLED", cfg.Tracing.Enabled)
	cfg.Tracing.ServiceName = getEnv("OTEL_SERVICE_NAME", cfg.Tracing.ServiceName)
	cfg.Tracing.Endpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Tracing.Endpoint)
	cfg.Tracing.Insecure = getEnvAsBool("OTEL_EXPORTER_OTLP_INSECURE", cfg.Tracing.Insecure)
	cfg.Tracing.SampleRatio = getEnvAsFloat("OTEL_SAMPLER_RATIO", cfg.Tracing.SampleRatio)

	cfg.CORS.AllowOrigins = getEnvAsList("CORS_ALLOW_ORIGINS", cfg.CORS.AllowOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Backend.BaseURL == "" {
		errs = append(errs, errors.New("backend base url is required"))
	}
	if c.Backend.Timeout <= 0 {
		errs = append(errs, errors.New("backend timeout must be positive"))
	}
	if c.Session.CookieName == "" {
		errs = append(errs, errors.New("session cookie name is required"))
	}
	if c.Session.TTL <= 0 || c.Session.HandoffTTL <= 0 {
		errs = append(errs, errors.New("session and handoff ttl must be positive"))
	}
	if len(c.Roster.Magistral) == 0 || len(c.Roster.Complementary) == 0 {
		errs = append(errs, errors.New("both instructor rosters must be non-empty"))
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("unknown server mode %q", c.Server.Mode))
	}
	if len(c.CORS.AllowOrigins) == 0 {
		errs = append(errs, errors.New("at least one CORS origin is required"))
	}
	if c.Server.Mode == "release" && (c.Session.Secret == "" || c.Session.Secret == defaultSessionSecret) {
		errs = append(errs, errors.New("SESSION_SECRET must be set in release mode"))
	}
	return errors.Join(errs...)
}

func (c *Config) GetServerAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(getEnv(key, ""))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated variable, dropping blank entries.
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
