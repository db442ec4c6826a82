package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Auth     AuthConfig    `toml:"auth"`
	Log      LogConfig     `toml:"log"`
	History  HistoryConfig `toml:"history"`
	Display  DisplayConfig `toml:"display"`
}

// AuthConfig holds login settings from [auth] section.
type AuthConfig struct {
	Username     string `toml:"username,omitempty"`      // Expected username
	PasswordHash string `toml:"password_hash,omitempty"` // bcrypt hash of the password
	MaxAttempts  int    `toml:"max_attempts,omitempty"`  // Login attempts before giving up (0 = unlimited)
}

// Configured reports whether both username and password hash are set.
func (a AuthConfig) Configured() bool {
	return a.Username != "" && a.PasswordHash != ""
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
	File  string `toml:"file,omitempty"`  // Log file path (empty = default path)
}

// HistoryConfig holds undo settings from [history] section.
type HistoryConfig struct {
	Limit int `toml:"limit,omitempty"` // Retained snapshots (0 = unbounded)
}

// DisplayConfig holds output settings from [display] section.
type DisplayConfig struct {
	Interactive bool `toml:"interactive"` // Browse listings in a table when stdout is a terminal
}

// Default configuration values.
const (
	DefaultLogLevel     = "info"
	DefaultHistoryLimit = 0
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		History: HistoryConfig{
			Limit: DefaultHistoryLimit,
		},
		Display: DisplayConfig{
			Interactive: true,
		},
	}
}

// templateData holds all data for rendering the config template.
type templateData struct {
	Username     string
	PasswordHash string
	LogLevel     string
	LogFile      string
	MaxAttempts  int
	HistoryLimit int
	Interactive  bool
}

// RenderConfigTemplate renders the commented config template with the values
// of cfg filled in.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		Username:     cfg.Auth.Username,
		PasswordHash: cfg.Auth.PasswordHash,
		MaxAttempts:  cfg.Auth.MaxAttempts,
		LogLevel:     cfg.Log.Level,
		LogFile:      cfg.Log.File,
		HistoryLimit: cfg.History.Limit,
		Interactive:  cfg.Display.Interactive,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Should never happen with valid data
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
