// Package config provides configuration loading and management for
// channelgraph.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete channelgraph configuration.
type Config struct {
	NATS  NATSConfig  `yaml:"nats"`
	Graph GraphConfig `yaml:"graph"`
	Store StoreConfig `yaml:"store"`
}

// NATSConfig configures the NATS connection.
type NATSConfig struct {
	// URL is the NATS server URL (empty = use embedded server)
	URL string `yaml:"url"`
	// Embedded indicates whether to use embedded NATS
	Embedded bool `yaml:"embedded"`
}

// GraphConfig configures graph ingestion.
type GraphConfig struct {
	// Subject is the stream subject entity payloads are published to
	Subject string `yaml:"subject"`
	// Source is the provenance source recorded on published triples
	Source string `yaml:"source"`
}

// StoreConfig configures the entity snapshot store.
type StoreConfig struct {
	// Bucket is the KV bucket name for entity records
	Bucket string `yaml:"bucket"`
	// History is the number of revisions kept per record
	History int `yaml:"history"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		NATS: NATSConfig{
			URL:      "",
			Embedded: true,
		},
		Graph: GraphConfig{
			Subject: "graph.ingest.entity",
			Source:  "channelgraph",
		},
		Store: StoreConfig{
			Bucket:  "CHANNELGRAPH_ENTITIES",
			History: 5,
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Graph.Subject == "" {
		return fmt.Errorf("graph.subject is required")
	}
	if c.Graph.Source == "" {
		return fmt.Errorf("graph.source is required")
	}
	if c.Store.Bucket == "" {
		return fmt.Errorf("store.bucket is required")
	}
	if c.Store.History < 1 || c.Store.History > 64 {
		return fmt.Errorf("store.history must be between 1 and 64")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file, applying defaults for
// unset fields.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
