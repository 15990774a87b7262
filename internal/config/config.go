package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config agrupa todo lo que main necesita para levantar el servicio.
// Orden de carga (menor a mayor prioridad): defaults, .env, CONFIG_FILE (yaml), env vars.
type Config struct {
	Port            string        `yaml:"port"`
	DBDSN           string        `yaml:"db_dsn"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	CORSOrigins     []string      `yaml:"cors_allowed_origins"`

	Log   LogConfig   `yaml:"log"`
	Auth  AuthConfig  `yaml:"auth"`
	Plans PlansConfig `yaml:"plans"`
	Push  PushConfig  `yaml:"push"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

type AuthConfig struct {
	OdinBaseURL string `yaml:"odin_base_url"`
	OdinAPIKey  string `yaml:"odin_api_key"`
	JWTSecret   string `yaml:"jwt_secret"`
	JWTIssuer   string `yaml:"jwt_issuer"`
}

type PlansConfig struct {
	BaseURL  string `yaml:"base_url"`
	APIKey   string `yaml:"api_key"`
	AllowAll bool   `yaml:"allow_all"`
}

type PushConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

func Default() Config {
	return Config{
		Port:            "8080",
		ShutdownTimeout: 10 * time.Second,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "pet-care-reminders",
		},
		Push: PushConfig{
			Timeout: 5 * time.Second,
		},
	}
}

// Load carga .env (si existe), luego CONFIG_FILE y por último env vars.
func Load() (Config, error) {
	_ = godotenv.Load() // sin .env es válido

	cfg := Default()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Port, "PORT")
	setString(&cfg.DBDSN, "DB_DSN")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")
	setString(&cfg.Log.App, "APP_NAME")
	setString(&cfg.Auth.OdinBaseURL, "ODIN_BASE_URL")
	setString(&cfg.Auth.OdinAPIKey, "ODIN_API_KEY")
	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	setString(&cfg.Auth.JWTIssuer, "JWT_ISSUER")
	setString(&cfg.Plans.BaseURL, "PLANS_BASE_URL")
	setString(&cfg.Plans.APIKey, "PLANS_API_KEY")
	setString(&cfg.Push.BaseURL, "PUSH_BASE_URL")
	setString(&cfg.Push.APIKey, "PUSH_API_KEY")

	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		cfg.CORSOrigins = splitCSV(v)
	}

	if v := strings.TrimSpace(os.Getenv("ALLOW_ALL_CAPABILITIES")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: ALLOW_ALL_CAPABILITIES: %w", err)
		}
		cfg.Plans.AllowAll = b
	}

	if err := setDuration(&cfg.ShutdownTimeout, "SHUTDOWN_TIMEOUT"); err != nil {
		return err
	}
	return setDuration(&cfg.Push.Timeout, "PUSH_TIMEOUT")
}

// Validate rechaza valores que harían fallar el arranque más tarde y de forma confusa.
func (c Config) Validate() error {
	port, err := strconv.Atoi(strings.TrimSpace(c.Port))
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("config: invalid port %q", c.Port)
	}
	if c.ShutdownTimeout < 0 {
		return errors.New("config: shutdown_timeout must be >= 0")
	}
	if c.Push.Timeout < 0 {
		return errors.New("config: push.timeout must be >= 0")
	}
	return nil
}

// Addr devuelve ":PORT" para http.Server.
func (c Config) Addr() string {
	return ":" + strings.TrimSpace(c.Port)
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = d
	return nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
