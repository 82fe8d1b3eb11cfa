package main

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the exporter configuration, read from growatt-exporter.yaml or
// GROWATT_* environment variables.
type Config struct {
	// Token is the Growatt OpenAPI token. Required.
	Token string `mapstructure:"token"`
	// ServerURL overrides the API endpoint, e.g. a regional server.
	ServerURL string `mapstructure:"server_url"`
	// PlantIDs restricts scraping to the listed plants. Empty means all
	// plants visible to the token.
	PlantIDs []int64 `mapstructure:"plant_ids"`
	// Listen is the address the metrics endpoint binds to.
	Listen string `mapstructure:"listen"`
	// Timeout bounds every API call during a scrape.
	Timeout time.Duration `mapstructure:"timeout"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

func loadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("growatt-exporter")
	v.AddConfigPath("/etc/growatt-exporter")
	v.AddConfigPath(".")

	v.SetEnvPrefix("growatt")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("token", "")
	v.SetDefault("server_url", "")
	v.SetDefault("listen", ":9108")
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read configuration file")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse configuration")
	}

	if cfg.Token == "" {
		return nil, errors.New("api token must be configured")
	}

	return cfg, nil
}
