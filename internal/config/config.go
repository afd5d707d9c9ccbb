package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Email   EmailConfig   `yaml:"email"`
	Mirror  MirrorConfig  `yaml:"mirror"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr          string `yaml:"addr"`
	WebhookSecret string `yaml:"webhook_secret"` // Optional: empty disables the header check
}

type EmailConfig struct {
	APIKey         string        `yaml:"api_key"`
	Endpoint       string        `yaml:"endpoint"`
	From           string        `yaml:"from"`
	AdminRecipient string        `yaml:"admin_recipient"`
	SendTimeout    time.Duration `yaml:"send_timeout"`
}

type MirrorConfig struct {
	URL           string        `yaml:"url"` // Optional: empty disables event mirroring
	Subject       string        `yaml:"subject"`
	MaxReconnect  int           `yaml:"max_reconnect"`
	ReconnectWait time.Duration `yaml:"reconnect_wait"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads the config file at path, applies defaults, then lets
// environment variables override file values. A missing file is not an
// error: env-only deployments run without one.
func Load(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Set defaults
	if config.Server.Addr == "" {
		config.Server.Addr = ":8080"
	}
	if config.Email.Endpoint == "" {
		config.Email.Endpoint = "https://api.resend.com/emails"
	}
	if config.Email.From == "" {
		config.Email.From = "Akli <no-reply@akli.app>"
	}
	if config.Email.SendTimeout == 0 {
		config.Email.SendTimeout = 10 * time.Second
	}
	if config.Mirror.Subject == "" {
		config.Mirror.Subject = "db.change_events"
	}
	if config.Mirror.ReconnectWait == 0 {
		config.Mirror.ReconnectWait = 2 * time.Second
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}

	applyEnv(&config)

	return &config, nil
}

func applyEnv(c *Config) {
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("WEBHOOK_SECRET"); v != "" {
		c.Server.WebhookSecret = v
	}
	if v := os.Getenv("RESEND_API_KEY"); v != "" {
		c.Email.APIKey = v
	}
	if v := os.Getenv("MAIL_FROM"); v != "" {
		c.Email.From = v
	}
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		c.Email.AdminRecipient = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		c.Mirror.URL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate reports missing required settings so a misconfigured notifier
// fails at startup instead of rejecting every send.
func (c *Config) Validate() error {
	if c.Email.APIKey == "" {
		return errors.New("email api key is required (email.api_key or RESEND_API_KEY)")
	}
	if c.Email.AdminRecipient == "" {
		return errors.New("admin recipient is required (email.admin_recipient or ADMIN_EMAIL)")
	}
	return nil
}
