package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/danmuck/wirekit/internal/hostport"
)

// InspectorConfig configures the inspection daemon.
type InspectorConfig struct {
	Name          string   `toml:"name"`
	Addr          string   `toml:"addr"`
	AdvertiseHost string   `toml:"advertise_host"`
	AdvertisePort int      `toml:"advertise_port"`
	CorsOrigins   []string `toml:"cors_origins"`
	AuthToken     string   `toml:"auth_token"`
	MaxBodyBytes  int64    `toml:"max_body_bytes"`
	DataDir       string   `toml:"data_dir"`
}

const (
	DefaultName         = "wirekit-inspect"
	DefaultAddr         = ":9400"
	DefaultMaxBodyBytes = 8 * 1024 * 1024
)

func DefaultInspectorConfig() InspectorConfig {
	return InspectorConfig{
		Name:         DefaultName,
		Addr:         DefaultAddr,
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

func LoadInspectorConfig(path string) (InspectorConfig, error) {
	var cfg InspectorConfig
	if err := loadToml(path, &cfg); err != nil {
		return InspectorConfig{}, err
	}
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.MaxBodyBytes == 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if err := ValidateInspectorConfig(cfg); err != nil {
		return InspectorConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateInspectorConfig(cfg InspectorConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("inspector config missing name")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("inspector config missing addr")
	}
	if cfg.MaxBodyBytes <= 0 {
		return fmt.Errorf("inspector config max_body_bytes must be positive")
	}
	if cfg.AdvertiseHost != "" && !hostport.ValidHost(cfg.AdvertiseHost) {
		return fmt.Errorf("inspector config advertise_host %q is not a valid host", cfg.AdvertiseHost)
	}
	if cfg.AdvertisePort != 0 {
		if !hostport.ValidPort(cfg.AdvertisePort) {
			return fmt.Errorf("inspector config advertise_port %d out of range", cfg.AdvertisePort)
		}
		if cfg.AdvertiseHost == "" {
			return fmt.Errorf("inspector config advertise_host required when advertise_port is set")
		}
	}
	return nil
}

// Endpoint returns the advertised http endpoint, or "" when no
// advertise_host is configured.
func (c InspectorConfig) Endpoint() string {
	if c.AdvertiseHost == "" {
		return ""
	}
	port := c.AdvertisePort
	if port == 0 {
		port = 80
	}
	return hostport.Format("http", c.AdvertiseHost, port)
}
