package config

import (
	"flag"
	"os"
)

type Config struct {
	RunAddress  string
	DatabaseURI string
}

func New() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "server address and port")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI (required)")
	flag.Parse()

	cfg.RunAddress = getEnv("RUN_ADDRESS", cfg.RunAddress)
	cfg.DatabaseURI = getEnv("DATABASE_URI", cfg.DatabaseURI)

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
