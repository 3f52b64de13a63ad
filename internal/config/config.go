package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig    `yaml:"server"`
	Database DatabaseConfig  `yaml:"database"`
	RabbitMQ *RabbitMQConfig `yaml:"rabbitmq"` // nil disables event publishing
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
	MaxConns int    `yaml:"max_conns"`
}

type RabbitMQConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	VHost    string `yaml:"vhost"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		Server:   ServerConfig{Port: 3000},
		Database: DatabaseConfig{Port: 5432, SSLMode: "disable", MaxConns: 10},
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Database.Host == "" || cfg.Database.User == "" || cfg.Database.Database == "" {
		return nil, errors.New("database config incomplete: host, user and database are required")
	}
	if cfg.RabbitMQ != nil {
		if cfg.RabbitMQ.Host == "" || cfg.RabbitMQ.User == "" {
			return nil, errors.New("rabbitmq config incomplete: host and user are required")
		}
		if cfg.RabbitMQ.Port == 0 {
			cfg.RabbitMQ.Port = 5672
		}
		if cfg.RabbitMQ.VHost == "" {
			cfg.RabbitMQ.VHost = "/"
		}
	}
	return cfg, nil
}

// Find returns the first config file present among the usual candidates.
func Find() (string, error) {
	candidates := []string{"config.yaml", "config.example.yaml"}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fs.ErrNotExist
}
