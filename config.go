package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the simple application configuration
type Config struct {
	REPL     REPLConfig     `json:"repl" yaml:"repl"`
	Parser   ParserConfig   `json:"parser" yaml:"parser"`
	Logging  LoggingConfig  `json:"logging" yaml:"logging"`
	Handlers HandlersConfig `json:"handlers" yaml:"handlers"`
}

// REPLConfig contains inspection shell configuration
type REPLConfig struct {
	Prompt      string `json:"prompt" yaml:"prompt"`
	HistorySize int    `json:"history_size" yaml:"history_size"`
	HistoryFile string `json:"history_file" yaml:"history_file"`
}

// ParserConfig contains source parsing configuration
type ParserConfig struct {
	LoadOrderDiagnostics bool     `json:"load_order_diagnostics" yaml:"load_order_diagnostics"`
	ExtraBuiltins        []string `json:"extra_builtins" yaml:"extra_builtins"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `json:"level" yaml:"level"`
}

// HandlersConfig contains handler registry configuration
type HandlersConfig struct {
	Disabled []string              `json:"disabled" yaml:"disabled"`
	Lua      map[string]LuaHandler `json:"lua" yaml:"lua"`
}

// LuaHandler points at a Lua handler script registered by name
type LuaHandler struct {
	Script string `json:"script,omitempty" yaml:"script,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		REPL: REPLConfig{
			Prompt:      "doclens> ",
			HistorySize: 1000,
			HistoryFile: "/tmp/doclens_history",
		},
		Parser: ParserConfig{
			LoadOrderDiagnostics: true,
			ExtraBuiltins:        []string{},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Handlers: HandlersConfig{
			Disabled: []string{},
			Lua:      map[string]LuaHandler{},
		},
	}
}

// LoadConfig loads configuration from a file
func LoadConfig(path string) (*Config, error) {
	// Start with default config
	config := DefaultConfig()

	// If no path provided, return default config
	if path == "" {
		return config, nil
	}

	// Expand ~ in path
	path = expandHome(path)

	// Read the config file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return default config
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	// Determine file format by extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %v", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %v", err)
		}
	default:
		// Try YAML as default
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %v", err)
		}
	}

	return config, nil
}

// SaveConfig saves configuration to a file
func SaveConfig(config *Config, path string) error {
	// Expand ~ in path
	path = expandHome(path)

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %v", err)
	}

	// Determine file format by extension
	ext := strings.ToLower(filepath.Ext(path))
	var data []byte
	var err error

	switch ext {
	case ".json":
		data, err = json.MarshalIndent(config, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON config: %v", err)
		}
	default:
		data, err = yaml.Marshal(config)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML config: %v", err)
		}
	}

	// Write the config file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

// expandHome expands ~ to the user's home directory
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// IsHandlerDisabled checks if a handler is disabled in config
func (c *Config) IsHandlerDisabled(name string) bool {
	for _, disabled := range c.Handlers.Disabled {
		if disabled == name {
			return true
		}
	}
	return false
}
