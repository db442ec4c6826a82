package domain

import "path/filepath"

// Directory and file names for todo.
const (
	AppDirName          = "todo"        // Directory name under config/state homes
	ConfigFileName      = "config.toml" // Global config file name
	LocalConfigFileName = ".todo.toml"  // Config file name in the working directory
	LogFileName         = "todo.log"    // Log file name
)

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// LocalConfigPath returns the local config path for a working directory.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigFileName)
}

// DefaultLogPath returns the log file path under a state directory.
// stateHome is typically XDG_STATE_HOME or ~/.local/state (resolved by caller).
func DefaultLogPath(stateHome string) string {
	return filepath.Join(stateHome, AppDirName, LogFileName)
}
