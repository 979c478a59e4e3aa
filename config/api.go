package config

import (
	"fmt"
	"net"
)

const (
	defaultAPIPort = 8400
	defaultAPIHost = "127.0.0.1"
)

// APIConfig defines the JSON API server's basic configuration
type APIConfig struct {
	Host string `long:"host" description:"IP the API server listens on"`
	Port int    `long:"port" description:"Port the API server listens on"`
}

func (cfg *APIConfig) Validate() error {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port: %d", cfg.Port)
	}

	ip := net.ParseIP(cfg.Host)
	if ip == nil {
		return fmt.Errorf("invalid host: %v", cfg.Host)
	}

	return nil
}

func (cfg *APIConfig) Address() (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port), nil
}

func DefaultAPIConfig() APIConfig {
	return APIConfig{
		Port: defaultAPIPort,
		Host: defaultAPIHost,
	}
}
