// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todo/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory holding the local .todo.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/todo)
	explicitPath  string // --config path; replaces global and local files when set
}

// NewLoader creates a new Loader.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// WithExplicitPath makes Load read only path on top of the defaults.
func (l *Loader) WithExplicitPath(path string) *Loader {
	l.explicitPath = path
	return l
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (default <- global <- local).
// Local config takes precedence over global config. A missing file is not
// an error, except for an explicit path.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if l.explicitPath != "" {
		explicit, err := l.loadFile(l.explicitPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", l.explicitPath, err)
		}
		return mergeConfigs(base, explicit), nil
	}

	// Load global config first
	global, err := l.loadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	// Load local config
	local, err := l.loadLocal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	// Merge: default <- global <- local (later takes precedence)
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	fc, err := l.loadGlobal()
	if err != nil {
		return nil, err
	}
	return fc.cfg, nil
}

// LoadLocal returns only the working directory configuration.
func (l *Loader) LoadLocal() (*domain.Config, error) {
	fc, err := l.loadLocal()
	if err != nil {
		return nil, err
	}
	return fc.cfg, nil
}

func (l *Loader) loadGlobal() (*fileConfig, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

func (l *Loader) loadLocal() (*fileConfig, error) {
	if l.workDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(domain.LocalConfigPath(l.workDir))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return parseRaw(raw), nil
}

// fileConfig carries the values read from one file. The *Set flags tell an
// explicit zero or false apart from an absent key.
type fileConfig struct {
	cfg            *domain.Config
	maxAttemptsSet bool
	limitSet       bool
	interactiveSet bool
}

// parseRaw converts the raw map to domain config and collects warnings.
func parseRaw(raw map[string]any) *fileConfig {
	fc := &fileConfig{cfg: &domain.Config{}}
	res := fc.cfg
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
			continue
		}
		switch section {
		case "auth":
			for k, v := range m {
				switch k {
				case "username":
					if s, ok := v.(string); ok {
						res.Auth.Username = s
					}
				case "password_hash":
					if s, ok := v.(string); ok {
						res.Auth.PasswordHash = s
					}
				case "max_attempts":
					if n, ok := v.(int64); ok {
						res.Auth.MaxAttempts = int(n)
						fc.maxAttemptsSet = true
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [auth]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				case "file":
					if s, ok := v.(string); ok {
						res.Log.File = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "history":
			for k, v := range m {
				switch k {
				case "limit":
					if n, ok := v.(int64); ok {
						res.History.Limit = int(n)
						fc.limitSet = true
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [history]: %s", k))
				}
			}
		case "display":
			for k, v := range m {
				switch k {
				case "interactive":
					if b, ok := v.(bool); ok {
						res.Display.Interactive = b
						fc.interactiveSet = true
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [display]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return fc
}

// mergeConfigs merges a file config into base, with override taking precedence.
func mergeConfigs(base *domain.Config, override *fileConfig) *domain.Config {
	o := override.cfg
	result := &domain.Config{
		Auth:     base.Auth,
		Log:      base.Log,
		History:  base.History,
		Display:  base.Display,
		Warnings: append([]string{}, base.Warnings...),
	}

	// Add override warnings
	result.Warnings = append(result.Warnings, o.Warnings...)

	if o.Auth.Username != "" {
		result.Auth.Username = o.Auth.Username
	}
	if o.Auth.PasswordHash != "" {
		result.Auth.PasswordHash = o.Auth.PasswordHash
	}
	if override.maxAttemptsSet {
		result.Auth.MaxAttempts = o.Auth.MaxAttempts
	}
	if o.Log.Level != "" {
		result.Log.Level = o.Log.Level
	}
	if o.Log.File != "" {
		result.Log.File = o.Log.File
	}
	if override.limitSet {
		result.History.Limit = o.History.Limit
	}
	if override.interactiveSet {
		result.Display.Interactive = o.Display.Interactive
	}

	return result
}
