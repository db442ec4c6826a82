package domain

import (
	"context"
	"fmt"
	"time"
)

// IDGenerator produces item identifiers.
type IDGenerator interface {
	// NewID returns a fresh identifier for an item of the given kind.
	NewID(kind Kind) string
}

// SequentialIDs is an IDGenerator yielding "task-1", "note-2", ...
// It is the default for collections created without a generator.
type SequentialIDs struct {
	next int
}

// NewID returns the next sequential identifier.
func (s *SequentialIDs) NewID(kind Kind) string {
	s.next++
	return fmt.Sprintf("%s-%d", kind, s.next)
}

// Logger records application events. Implementations must be safe to call
// with any category; an empty log destination drops entries.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// CredentialVerifier checks a username/password pair.
type CredentialVerifier interface {
	// Verify returns nil on success and ErrInvalidCredentials on mismatch.
	Verify(ctx context.Context, username, password string) error
}

// PasswordHasher produces the stored form of a password.
type PasswordHasher interface {
	// Hash returns the encoded hash of password.
	Hash(password string) (string, error)
}

// ItemSource yields items to preload into a session.
type ItemSource interface {
	// Items returns the items in the order they should be added.
	Items(ctx context.Context) ([]Item, error)
}

// Choice is one option offered by Prompter.Select.
type Choice struct {
	Label string // Text shown to the user
	Value string // Value returned when chosen
}

// Prompter asks the user for input on the console.
// Every method returns ErrAborted when the user cancels the prompt.
type Prompter interface {
	// Select returns the Value of the chosen option.
	Select(ctx context.Context, title string, choices []Choice) (string, error)
	// Input reads one line of text.
	Input(ctx context.Context, title string) (string, error)
	// Password reads one line of text without echoing it.
	Password(ctx context.Context, title string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, title string) (bool, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- local).
	Load() (*Config, error)
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo
	// GetLocalConfigInfo returns information about the local config file.
	GetLocalConfigInfo() ConfigInfo
	// InitGlobalConfig renders cfg into the global config path and returns it.
	InitGlobalConfig(cfg *Config, force bool) (string, error)
	// InitLocalConfig renders cfg into the local config path and returns it.
	InitLocalConfig(cfg *Config, force bool) (string, error)
}

// ConfigInfo describes a configuration file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
