package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Configuration
// ---------------------------------------------------------------------------

const (
	defaultCompany   = "บริษัท N.O.K. จำกัด"
	defaultOutputDir = "."
	holidayLayout    = "2006-01-02"
)

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"user"`
	Password string `yaml:"pass"`
}

type EmailConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// FontConfig points at TrueType files with Thai glyphs (e.g. TH Sarabun New).
type FontConfig struct {
	Regular string `yaml:"regular"`
	Bold    string `yaml:"bold"`
}

type Config struct {
	Company   string      `yaml:"company"`
	OutputDir string      `yaml:"output_dir"`
	Fonts     FontConfig  `yaml:"fonts"`
	SMTP      SMTPConfig  `yaml:"smtp"`
	Email     EmailConfig `yaml:"email"`
	// Holidays lists extra closed days (YYYY-MM-DD) on top of the Thai
	// public holidays, e.g. lunar holidays that move every year.
	Holidays []string `yaml:"holidays"`
}

// EmailEnabled reports whether generated documents should be mailed.
func (c *Config) EmailEnabled() bool {
	return c.SMTP.Host != "" && c.Email.To != ""
}

// extraHolidays parses the configured closed days.
func (c *Config) extraHolidays() ([]time.Time, error) {
	days := make([]time.Time, 0, len(c.Holidays))
	for _, s := range c.Holidays {
		d, err := time.Parse(holidayLayout, s)
		if err != nil {
			return nil, fmt.Errorf("invalid holiday %q: %w", s, err)
		}
		days = append(days, d)
	}
	return days, nil
}

// loadConfig reads and parses the YAML configuration file. name is the
// default file name; path overrides it when set.
func loadConfig(name, path string) (*Config, error) {
	if path == "" {
		path = name
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Company == "" {
		cfg.Company = defaultCompany
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaultOutputDir
	}
	if _, err := cfg.extraHolidays(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv lets the environment (or a .env file) override secrets and
// machine-specific paths.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SMTP_PASS"); v != "" {
		cfg.SMTP.Password = v
	}
	if v := os.Getenv("PDF_FONT_PATH"); v != "" {
		cfg.Fonts.Regular = v
	}
	if v := os.Getenv("PDF_FONT_BOLD_PATH"); v != "" {
		cfg.Fonts.Bold = v
	}
}
