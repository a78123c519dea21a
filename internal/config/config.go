//-------------------------------------------------------------------------
//
// GoldMart Retail Reporting
//
// Copyright (c) 2025 - 2026, the GoldMart authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for goldmart.
// Configuration is loaded from config files and CLI flags (no environment
// variables). CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for goldmart.
type Config struct {
	// Connection is the PostgreSQL connection string.
	Connection string `mapstructure:"connection"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Init holds configuration for the init subcommand.
	Init InitConfig `mapstructure:"init"`

	// Report holds configuration for the report and query subcommands.
	Report ReportConfig `mapstructure:"report"`
}

// InitConfig holds configuration for schema creation and data seeding.
type InitConfig struct {
	// Customers is the number of customer dimension rows to seed.
	Customers int `mapstructure:"customers"`

	// Products is the number of product dimension rows to seed.
	Products int `mapstructure:"products"`

	// Orders is the number of sales fact rows to seed.
	Orders int `mapstructure:"orders"`

	// Years is the length of the sales history window, ending today.
	Years int `mapstructure:"years"`

	// Seed is the RNG seed for reproducible data (0 = random).
	Seed uint64 `mapstructure:"seed"`

	// DropExisting drops existing schema before initialization.
	DropExisting bool `mapstructure:"drop_existing"`
}

// ReportConfig holds configuration for report and query output.
type ReportConfig struct {
	// Format is the output format: "table" or "csv".
	Format string `mapstructure:"format"`

	// Limit caps the number of rows printed (0 = all).
	Limit int `mapstructure:"limit"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Init: InitConfig{
			Customers: 500,
			Products:  120,
			Orders:    20000,
			Years:     3,
		},
		Report: ReportConfig{
			Format: "table",
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./goldmart.yaml
// 3. ~/.config/goldmart/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Set config name and type
	v.SetConfigName("goldmart")
	v.SetConfigType("yaml")

	// Add config paths
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "goldmart"))
	}

	// Use specific config file if provided
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Unmarshal config file values
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	return nil
}

// ValidateInit checks configuration required for the init command.
func (c *Config) ValidateInit() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Init.Customers < 1 {
		return fmt.Errorf("customers must be at least 1")
	}
	if c.Init.Products < 1 {
		return fmt.Errorf("products must be at least 1")
	}
	if c.Init.Orders < 1 {
		return fmt.Errorf("orders must be at least 1")
	}
	if c.Init.Years < 1 {
		return fmt.Errorf("years must be at least 1")
	}
	return nil
}

// ValidateReport checks configuration required for the report and query commands.
func (c *Config) ValidateReport() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Report.Format != "table" && c.Report.Format != "csv" {
		return fmt.Errorf("format must be 'table' or 'csv'")
	}
	if c.Report.Limit < 0 {
		return fmt.Errorf("limit must be non-negative")
	}
	return nil
}
