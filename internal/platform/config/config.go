package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAddr     = ":8000"
	DefaultMongoURI = "mongodb://localhost:27017"
	DefaultDatabase = "hrms_lite"

	// EnvMongoURL overrides the store address regardless of the config file.
	EnvMongoURL = "MONGODB_URL"
)

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type Config struct {
	Mode   string       `yaml:"mode"`
	Server ServerConfig `yaml:"server"`
	Mongo  MongoConfig  `yaml:"mongo"`
}

// Load reads the yaml config at path. A missing file is not an error:
// defaults apply, so the service runs with no config at all.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Mode:   "release",
		Server: ServerConfig{Addr: DefaultAddr},
		Mongo:  MongoConfig{URI: DefaultMongoURI, Database: DefaultDatabase},
	}

	buf, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(buf, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if uri := os.Getenv(EnvMongoURL); uri != "" {
		cfg.Mongo.URI = uri
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = DefaultDatabase
	}
	return cfg, nil
}
