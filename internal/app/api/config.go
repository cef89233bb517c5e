package api

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"go.temporal.io/sdk/client"
)

// Config carries environment-driven settings shared by the API and worker processes.
type Config struct {
	Port              string `env:"PORT" env-default:"8080"`
	PostgresDSN       string `env:"POSTGRES_DSN"`
	JWTSecret         string `env:"JWT_SECRET" env-required:"true"`
	CatalogBaseURL    string `env:"OMDB_API_URL" env-default:"https://www.omdbapi.com"`
	CatalogAPIKey     string `env:"OMDB_API_KEY" env-required:"true"`
	TemporalAddress   string `env:"TEMPORAL_ADDRESS"`
	TemporalNamespace string `env:"TEMPORAL_NAMESPACE"`
	TemporalDisabled  bool   `env:"TEMPORAL_DISABLED" env-default:"false"`
}

// LoadConfig reads environment variables and applies defaults.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if cfg.TemporalAddress == "" {
		cfg.TemporalAddress = client.DefaultHostPort
	}
	if cfg.TemporalNamespace == "" {
		cfg.TemporalNamespace = client.DefaultNamespace
	}
	return cfg, nil
}
