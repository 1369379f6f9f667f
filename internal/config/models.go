package config

import (
	"fmt"
	"time"
)

// Default values used when the settings file leaves a field unset.
const (
	DefaultPrompt      = "visitor@cybersec-portfolio:~$"
	DefaultBootDelayMS = 1000
	DefaultHistorySize = 50
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 8080
)

// Settings represents the entire user configuration file.
type Settings struct {
	Version     int             `yaml:"version"`
	ContentPath string          `yaml:"content_path,omitempty"` // Portfolio YAML; empty means the built-in content
	Terminal    *TerminalPrefs  `yaml:"terminal,omitempty"`
	Server      *ServerSettings `yaml:"server,omitempty"`
}

// TerminalPrefs controls the simulated terminal shared by the TUI and the
// browser front-end.
type TerminalPrefs struct {
	Prompt      string `yaml:"prompt"`
	BootDelayMS int    `yaml:"boot_delay_ms"` // Time spent on the boot screen before input is accepted
	HistorySize int    `yaml:"history_size"`  // Number of submitted commands kept for recall
}

// ServerSettings configures `termfolio serve`.
type ServerSettings struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	CertPath     string `yaml:"cert_path,omitempty"` // TLS is enabled when both cert and key are set
	KeyPath      string `yaml:"key_path,omitempty"`
	Advertise    bool   `yaml:"advertise"`               // Announce the server over mDNS
	InstanceName string `yaml:"instance_name,omitempty"` // mDNS instance name; defaults to the hostname
}

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Terminal: &TerminalPrefs{
			Prompt:      DefaultPrompt,
			BootDelayMS: DefaultBootDelayMS,
			HistorySize: DefaultHistorySize,
		},
		Server: &ServerSettings{
			Host: DefaultHost,
			Port: DefaultPort,
		},
	}
}

// applyDefaults fills sections and fields the file left out.
func (s *Settings) applyDefaults() {
	def := NewSettings()
	if s.Terminal == nil {
		s.Terminal = def.Terminal
	}
	if s.Server == nil {
		s.Server = def.Server
	}
	if s.Terminal.Prompt == "" {
		s.Terminal.Prompt = DefaultPrompt
	}
	if s.Terminal.HistorySize == 0 {
		s.Terminal.HistorySize = DefaultHistorySize
	}
	if s.Server.Host == "" {
		s.Server.Host = DefaultHost
	}
	if s.Server.Port == 0 {
		s.Server.Port = DefaultPort
	}
}

// Validate checks value ranges. It expects defaults to have been applied.
func (s *Settings) Validate() error {
	if s.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", s.Version)
	}
	if s.Terminal.BootDelayMS < 0 {
		return fmt.Errorf("terminal.boot_delay_ms must not be negative, got %d", s.Terminal.BootDelayMS)
	}
	if s.Terminal.HistorySize < 1 || s.Terminal.HistorySize > DefaultHistorySize {
		return fmt.Errorf("terminal.history_size must be between 1 and %d, got %d", DefaultHistorySize, s.Terminal.HistorySize)
	}
	if s.Server.Port < 1 || s.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Server.Port)
	}
	if (s.Server.CertPath == "") != (s.Server.KeyPath == "") {
		return fmt.Errorf("server.cert_path and server.key_path must be set together")
	}
	return nil
}

// BootDelay returns the boot delay as a duration.
func (s *Settings) BootDelay() time.Duration {
	return time.Duration(s.Terminal.BootDelayMS) * time.Millisecond
}
