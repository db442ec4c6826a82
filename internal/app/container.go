// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"os"
	"path/filepath"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/auth"
	"github.com/runoshun/todo/internal/infra/config"
	"github.com/runoshun/todo/internal/infra/ids"
	"github.com/runoshun/todo/internal/infra/logging"
	"github.com/runoshun/todo/internal/infra/seedfile"
	"github.com/runoshun/todo/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir    string // Directory holding the local .todo.toml
	ConfigPath string // Explicit --config path (empty = global + local)
	LogPath    string // Resolved log file path (empty = logging disabled)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
// Fields are ordered to minimize memory padding.
type Container struct {
	// Ports (interfaces bound to implementations)
	Verifier      domain.CredentialVerifier
	Hasher        domain.PasswordHasher
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger
	Prompter      domain.Prompter // Console prompter (nil = chosen by the CLI)

	// LoadErr is the error from loading AppConfig, if any. AppConfig then
	// holds defaults so config commands can still repair the file.
	LoadErr error

	// Pointer fields
	Items     *domain.Collection
	AppConfig *domain.Config
	closer    io.Closer

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
// configPath, when set, replaces the global and local config files.
func New(workDir, configPath string) *Container {
	loader := config.NewLoader(workDir)
	if configPath != "" {
		loader = loader.WithExplicitPath(configPath)
	}
	appConfig, loadErr := loader.Load()
	if loadErr != nil {
		appConfig = domain.NewDefaultConfig()
	}

	cfg := Config{
		WorkDir:    workDir,
		ConfigPath: configPath,
		LogPath:    resolveLogPath(appConfig.Log.File),
	}

	// Create logger
	logger := logging.New(cfg.LogPath, logging.ParseLevel(appConfig.Log.Level))

	idGen := ids.New(domain.RealClock{})

	return &Container{
		Verifier:      auth.NewVerifier(appConfig.Auth),
		Hasher:        auth.Hasher{},
		ConfigLoader:  loader,
		ConfigManager: config.NewManager(workDir),
		Logger:        logger,
		LoadErr:       loadErr,
		Items:         newCollection(appConfig, idGen),
		AppConfig:     appConfig,
		closer:        logger,
		Config:        cfg,
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// Items get sequential IDs. A nil verifier falls back to one built from appConfig.
func NewWithDeps(cfg Config, appConfig *domain.Config, verifier domain.CredentialVerifier, logger domain.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	if verifier == nil {
		verifier = auth.NewVerifier(appConfig.Auth)
	}
	idGen := &domain.SequentialIDs{}
	return &Container{
		Verifier:  verifier,
		Hasher:    auth.Hasher{},
		Logger:    logger,
		Items:     newCollection(appConfig, idGen),
		AppConfig: appConfig,
		Config:    cfg,
	}
}

func newCollection(appConfig *domain.Config, idGen domain.IDGenerator) *domain.Collection {
	return domain.NewCollection(
		domain.WithHistoryLimit(appConfig.History.Limit),
		domain.WithIDGenerator(idGen),
	)
}

// resolveLogPath returns file, or todo.log under the XDG state directory.
func resolveLogPath(file string) string {
	if file != "" {
		return file
	}
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return domain.DefaultLogPath(stateHome)
}

// Close releases the log file.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// SeedFile returns an ItemSource reading the YAML file at path.
func (c *Container) SeedFile(path string) domain.ItemSource {
	if !filepath.IsAbs(path) && c.Config.WorkDir != "" {
		path = filepath.Join(c.Config.WorkDir, path)
	}
	return seedfile.New(path)
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Items, c.Logger)
}

// AddNoteUseCase returns a new AddNote use case.
func (c *Container) AddNoteUseCase() *usecase.AddNote {
	return usecase.NewAddNote(c.Items, c.Logger)
}

// CompleteItemUseCase returns a new CompleteItem use case.
func (c *Container) CompleteItemUseCase() *usecase.CompleteItem {
	return usecase.NewCompleteItem(c.Items, c.Logger)
}

// DeleteItemUseCase returns a new DeleteItem use case.
func (c *Container) DeleteItemUseCase() *usecase.DeleteItem {
	return usecase.NewDeleteItem(c.Items, c.Logger)
}

// ListItemsUseCase returns a new ListItems use case.
func (c *Container) ListItemsUseCase() *usecase.ListItems {
	return usecase.NewListItems(c.Items)
}

// UndoUseCase returns a new Undo use case.
func (c *Container) UndoUseCase() *usecase.Undo {
	return usecase.NewUndo(c.Items, c.Logger)
}

// LoginUseCase returns a new Login use case.
func (c *Container) LoginUseCase() *usecase.Login {
	return usecase.NewLogin(c.Verifier, c.Logger)
}

// ImportItemsUseCase returns a new ImportItems use case reading from source.
func (c *Container) ImportItemsUseCase(source domain.ItemSource) *usecase.ImportItems {
	return usecase.NewImportItems(c.Items, source, c.Logger)
}

// HashPasswordUseCase returns a new HashPassword use case.
func (c *Container) HashPasswordUseCase() *usecase.HashPassword {
	return usecase.NewHashPassword(c.Hasher)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
