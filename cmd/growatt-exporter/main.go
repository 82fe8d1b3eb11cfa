package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/smartpv/growatt-go/growatt"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	initLogger(cfg)

	client, err := newGrowattClient(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to create API client")
	}

	prometheus.MustRegister(newCollector(client, cfg.PlantIDs))

	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	log.WithField("listen", cfg.Listen).Info("starting growatt exporter")
	log.Fatal(http.ListenAndServe(cfg.Listen, nil))
}

func initLogger(cfg *Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	log.SetLevel(level)

	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}
}

func newGrowattClient(cfg *Config) (*growatt.Client, error) {
	opts := []growatt.Option{growatt.WithTimeout(cfg.Timeout)}

	if cfg.ServerURL != "" {
		opts = append(opts, growatt.WithBaseURL(cfg.ServerURL))
	}

	return growatt.NewClient(cfg.Token, opts...)
}
