// Termfolio is a portfolio presented as a simulated command-line terminal.
//
// Visitors type commands such as help, about, projects or contact and get
// the portfolio content back as terminal output. The same terminal runs
// locally as a full-screen TUI or in the browser through the built-in
// HTTP and WebSocket server.
//
// Usage:
//
//	termfolio [command] [flags]
//
// Running without arguments opens the interactive terminal.
// See 'termfolio --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexchen/termfolio/internal/config"
	"github.com/alexchen/termfolio/internal/logging"
	"github.com/alexchen/termfolio/internal/portfolio"
	"github.com/alexchen/termfolio/internal/terminal"
	"github.com/alexchen/termfolio/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath  string
	contentPath string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "termfolio",
	Short: "Portfolio terminal",
	Long: `A portfolio presented as a simulated command-line terminal.

Visitors explore the portfolio by typing commands (help, about, projects,
skills, contact, ...). The terminal runs locally as a full-screen TUI or is
served to browsers over HTTP and WebSocket with 'termfolio serve'.

If no command is specified, the interactive terminal opens.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel)
	},
	RunE: runTUI,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default: user config directory)")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "Portfolio YAML file (default: built-in content)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when empty")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("termfolio " + version.Full())
	},
}

// loadSettings reads --config, or the default settings file.
func loadSettings() (*config.Settings, error) {
	if configPath != "" {
		return config.LoadSettingsFrom(configPath)
	}
	return config.LoadSettings()
}

// loadPortfolio resolves the content file from --content, then the
// settings, then the built-in default.
func loadPortfolio(settings *config.Settings) (*portfolio.Portfolio, error) {
	path := contentPath
	if path == "" {
		path = settings.ContentPath
	}
	if path == "" {
		return portfolio.Default(), nil
	}
	p, err := portfolio.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio content: %w", err)
	}
	logging.Debug("Loaded portfolio content", zap.String("path", path))
	return p, nil
}

func newSession(settings *config.Settings, p *portfolio.Portfolio) *terminal.Session {
	return terminal.NewSession(p, nil,
		terminal.WithPrompt(settings.Terminal.Prompt),
		terminal.WithHistorySize(settings.Terminal.HistorySize),
	)
}
