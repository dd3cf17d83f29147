package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	AppEnv string
	Port   string

	DatabaseDriver string
	DatabaseURL    string

	Location *time.Location

	// RabbitMQURL vazio desliga os eventos de negócio.
	RabbitMQURL string

	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string

	// RateLimitRPS 0 desliga o limitador.
	RateLimitRPS   float64
	RateLimitBurst int

	CORSOrigins []string
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == EnvDevelopment
}

func (c *Config) EventsEnabled() bool {
	return c.RabbitMQURL != ""
}

func (c *Config) MailEnabled() bool {
	return c.MailHost != ""
}

// Load lê o .env (se existir) e depois as variáveis de ambiente.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Arquivo .env não encontrado, usando variáveis de ambiente")
	}
	return FromEnv(os.Getenv)
}

// FromEnv monta a configuração a partir de getenv; números inválidos são erro.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		AppEnv:         strings.ToLower(get("APP_ENV", EnvDevelopment)),
		Port:           get("PORT", "8080"),
		DatabaseDriver: strings.ToLower(get("DATABASE_DRIVER", "sqlite")),
		DatabaseURL:    get("DATABASE_URL", "crm.db"),
		RabbitMQURL:    get("RABBITMQ_URL", ""),
		MailHost:       get("MAIL_HOST", ""),
		MailUser:       get("MAIL_USER", ""),
		MailPass:       get("MAIL_PASS", ""),
		MailFrom:       get("MAIL_FROM", ""),
	}

	switch cfg.DatabaseDriver {
	case "sqlite", "pgx":
	case "postgres":
		cfg.DatabaseDriver = "pgx"
	default:
		return nil, fmt.Errorf("DATABASE_DRIVER inválido %q: use sqlite ou pgx", cfg.DatabaseDriver)
	}

	loc, err := time.LoadLocation(get("TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE inválido: %w", err)
	}
	cfg.Location = loc

	if cfg.MailPort, err = strconv.Atoi(get("MAIL_PORT", "587")); err != nil {
		return nil, fmt.Errorf("MAIL_PORT inválido: %w", err)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(get("RATE_LIMIT_RPS", "0"), 64); err != nil || cfg.RateLimitRPS < 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS inválido: %q", getenv("RATE_LIMIT_RPS"))
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(get("RATE_LIMIT_BURST", "20")); err != nil || cfg.RateLimitBurst < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_BURST inválido: %q", getenv("RATE_LIMIT_BURST"))
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT inválida: %w", err)
	}

	cfg.CORSOrigins = []string{"*"}
	if raw := get("CORS_ORIGINS", ""); raw != "" {
		cfg.CORSOrigins = nil
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	if cfg.MailFrom == "" {
		cfg.MailFrom = cfg.MailUser
	}

	return cfg, nil
}
