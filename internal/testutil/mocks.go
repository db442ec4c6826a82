// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"strings"
	"time"

	"github.com/runoshun/todo/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// LogEntry is one call recorded by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger that records every entry.
type MockLogger struct {
	Entries []LogEntry
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

// Debug records a DEBUG entry.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Info records an INFO entry.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Warn records a WARN entry.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an ERROR entry.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }

func (m *MockLogger) record(level, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// HasEntry reports whether an entry with level contains substr.
func (m *MockLogger) HasEntry(level, substr string) bool {
	for _, e := range m.Entries {
		if e.Level == level && strings.Contains(e.Msg, substr) {
			return true
		}
	}
	return false
}

// MockVerifier is a test double for domain.CredentialVerifier.
// It accepts exactly Username/Password unless Err is set.
type MockVerifier struct {
	Err      error
	Username string
	Password string
	Calls    int
}

// Ensure MockVerifier implements domain.CredentialVerifier interface.
var _ domain.CredentialVerifier = (*MockVerifier)(nil)

// Verify records the call and compares the credentials.
func (m *MockVerifier) Verify(_ context.Context, username, password string) error {
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	if username != m.Username || password != m.Password {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// MockItemSource is a test double for domain.ItemSource.
type MockItemSource struct {
	Err      error
	ItemList []domain.Item
}

// Ensure MockItemSource implements domain.ItemSource interface.
var _ domain.ItemSource = (*MockItemSource)(nil)

// Items returns the configured items or error.
func (m *MockItemSource) Items(_ context.Context) ([]domain.Item, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.ItemList, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// NewMockConfigLoader creates a new MockConfigLoader with a default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitLocalErr     error
	InitGlobalErr    error
	InitConfig       *domain.Config // Config passed to the last Init call
	LocalConfigInfo  domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo
	InitLocalCalled  bool
	InitGlobalCalled bool
	InitForce        bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		LocalConfigInfo: domain.ConfigInfo{
			Path:   "/test/.todo.toml",
			Exists: false,
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/todo/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetLocalConfigInfo returns the configured local config info.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo {
	return m.LocalConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitLocalConfig records the call and returns configured error.
func (m *MockConfigManager) InitLocalConfig(cfg *domain.Config, force bool) (string, error) {
	m.InitLocalCalled = true
	m.InitConfig = cfg
	m.InitForce = force
	if m.InitLocalErr != nil {
		return "", m.InitLocalErr
	}
	if m.LocalConfigInfo.Exists && !force {
		return "", domain.ErrConfigExists
	}
	return m.LocalConfigInfo.Path, nil
}

// InitGlobalConfig records the call and returns configured error.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config, force bool) (string, error) {
	m.InitGlobalCalled = true
	m.InitConfig = cfg
	m.InitForce = force
	if m.InitGlobalErr != nil {
		return "", m.InitGlobalErr
	}
	if m.GlobalConfigInfo.Exists && !force {
		return "", domain.ErrConfigExists
	}
	return m.GlobalConfigInfo.Path, nil
}

// MockPrompter is a scripted domain.Prompter.
// Each prompt consumes the next answer; once answers run out every prompt
// returns domain.ErrAborted, as if the user pressed ctrl+c.
type MockPrompter struct {
	Answers []string
	Titles  []string // Titles of the prompts shown, in order
}

// NewMockPrompter creates a MockPrompter answering with answers in order.
func NewMockPrompter(answers ...string) *MockPrompter {
	return &MockPrompter{Answers: answers}
}

// Ensure MockPrompter implements domain.Prompter interface.
var _ domain.Prompter = (*MockPrompter)(nil)

// Select returns the next answer. The answer is the choice Value.
func (m *MockPrompter) Select(_ context.Context, title string, _ []domain.Choice) (string, error) {
	return m.next(title)
}

// Input returns the next answer.
func (m *MockPrompter) Input(_ context.Context, title string) (string, error) {
	return m.next(title)
}

// Password returns the next answer.
func (m *MockPrompter) Password(_ context.Context, title string) (string, error) {
	return m.next(title)
}

// Confirm consumes the next answer; "y" and "yes" mean true.
func (m *MockPrompter) Confirm(_ context.Context, title string) (bool, error) {
	answer, err := m.next(title)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Remaining returns the number of unconsumed answers.
func (m *MockPrompter) Remaining() int {
	return len(m.Answers)
}

func (m *MockPrompter) next(title string) (string, error) {
	m.Titles = append(m.Titles, title)
	if len(m.Answers) == 0 {
		return "", domain.ErrAborted
	}
	answer := m.Answers[0]
	m.Answers = m.Answers[1:]
	return answer, nil
}
