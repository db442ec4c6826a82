package domain

import (
	"path/filepath"
	"testing"
)

func TestPaths(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"global config dir", GlobalConfigDir("/home/u/.config"), filepath.Join("/home/u/.config", "todo")},
		{"global config path", GlobalConfigPath("/home/u/.config"), filepath.Join("/home/u/.config", "todo", "config.toml")},
		{"local config path", LocalConfigPath("/work"), filepath.Join("/work", ".todo.toml")},
		{"default log path", DefaultLogPath("/home/u/.local/state"), filepath.Join("/home/u/.local/state", "todo", "todo.log")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
