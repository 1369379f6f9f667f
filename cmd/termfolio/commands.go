package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexchen/termfolio/internal/config"
	"github.com/alexchen/termfolio/internal/discovery"
	"github.com/alexchen/termfolio/internal/server"
	"github.com/alexchen/termfolio/internal/terminal"
	"github.com/alexchen/termfolio/internal/tui"
	"github.com/alexchen/termfolio/internal/ui"
)

func init() {
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scanCmd)
}

// tuiCmd opens the interactive terminal
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive terminal",
	Long: `Open the portfolio terminal full-screen in the current terminal.

Type 'help' to list the commands. Up and Down recall earlier commands, Tab
completes a command name, PgUp and PgDn scroll the output, and Ctrl+C quits.`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	p, err := loadPortfolio(settings)
	if err != nil {
		return err
	}

	err = tui.Run(cmd.Context(), newSession(settings, p), tui.Options{
		BootDelay: settings.BootDelay(),
	})
	if err != nil {
		return fmt.Errorf("terminal error: %w", err)
	}
	return nil
}

// Serve command flags
var (
	serveHost      string
	servePort      int
	serveCert      string
	serveKey       string
	serveAdvertise bool
	serveName      string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the terminal to browsers",
	Long: `Start the HTTP server that hosts the browser terminal.

Every browser tab gets its own terminal session over a WebSocket. Flags
override the server section of the settings file. TLS is enabled when both
--cert and --key are given.

With --advertise the server announces itself on the local network over mDNS
so that 'termfolio scan' can find it.`,
	Example: `  # Serve on the configured address (default 0.0.0.0:8080)
  termfolio serve

  # Serve custom content on another port with debug logging
  termfolio serve --content ./me.yaml --port 9000 --log-level debug

  # Serve over TLS and advertise on the LAN
  termfolio serve --cert cert.pem --key key.pem --port 8443 --advertise --name lab`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen address (empty = settings, default 0.0.0.0)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (0 = settings, default 8080)")
	serveCmd.Flags().StringVar(&serveCert, "cert", "", "Path to TLS certificate file")
	serveCmd.Flags().StringVar(&serveKey, "key", "", "Path to TLS private key file")
	serveCmd.Flags().BoolVar(&serveAdvertise, "advertise", false, "Announce the server over mDNS")
	serveCmd.Flags().StringVar(&serveName, "name", "", "mDNS instance name (default: hostname)")
}

func runServe(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	p, err := loadPortfolio(settings)
	if err != nil {
		return err
	}

	cfg := serverConfig(cmd, settings.Server)
	cfg.BootDelay = settings.BootDelay()
	cfg.Prompt = settings.Terminal.Prompt
	cfg.HistorySize = settings.Terminal.HistorySize

	if (cfg.CertPath == "") != (cfg.KeyPath == "") {
		return errors.New("both --cert and --key must be provided together")
	}

	srv, err := server.New(cfg, p)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Start()
}

// serverConfig merges the settings file with the flags the user set.
func serverConfig(cmd *cobra.Command, s *config.ServerSettings) *server.Config {
	cfg := &server.Config{
		Host:         s.Host,
		Port:         s.Port,
		CertPath:     s.CertPath,
		KeyPath:      s.KeyPath,
		Advertise:    s.Advertise,
		InstanceName: s.InstanceName,
	}
	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Host = serveHost
	}
	if flags.Changed("port") {
		cfg.Port = servePort
	}
	if flags.Changed("cert") {
		cfg.CertPath = serveCert
	}
	if flags.Changed("key") {
		cfg.KeyPath = serveKey
	}
	if flags.Changed("advertise") {
		cfg.Advertise = serveAdvertise
	}
	if flags.Changed("name") {
		cfg.InstanceName = serveName
	}
	return cfg
}

// Run command flags
var (
	runWelcome  bool
	runNoHeader bool
	runWidth    int
)

var runCmd = &cobra.Command{
	Use:   "run <command>...",
	Short: "Run terminal commands and print their output",
	Long: `Run one or more terminal commands without the interactive screen.

Each argument is submitted as one command line, in order, to a fresh
terminal session. Quote arguments that contain spaces. The exit status is
non-zero when any command is unknown.`,
	Example: `  # Print the about section
  termfolio run about

  # Several commands in one session
  termfolio run whoami skills contact

  # Plain output for scripts
  termfolio run projects --no-header | less

  # Fixed width when piping to a file
  termfolio run resume --width 100 > resume.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCommands,
}

func init() {
	runCmd.Flags().BoolVar(&runWelcome, "welcome", false, "Print the welcome banner first")
	runCmd.Flags().BoolVar(&runNoHeader, "no-header", false, "Do not print the header box")
	runCmd.Flags().IntVar(&runWidth, "width", 0, "Render width in cells (0 = terminal width)")
}

func runCommands(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	p, err := loadPortfolio(settings)
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	if runWidth > 0 {
		printer = ui.NewPrinterWidth(cmd.OutOrStdout(), runWidth)
	}
	if !runNoHeader {
		printer.PrintHeader(p.Name, "termfolio run "+strings.Join(args, " "),
			ui.Param{Key: "Commands", Value: fmt.Sprintf("%d", len(args))},
		)
	}

	sess := newSession(settings, p)
	welcome := sess.Boot()
	if runWelcome {
		printer.PrintTranscript(welcome)
	}

	failed := 0
	for _, line := range args {
		up := sess.SubmitLine(line)
		if up.Result.Kind == terminal.ResultError {
			failed++
		}
		printer.PrintTranscript(up.Appended)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d command(s) not found", failed, len(args))
	}
	return nil
}

// Scan command flags
var scanTimeout int

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find termfolio servers on the local network",
	Long: `Browse mDNS for servers started with 'termfolio serve --advertise' and
list their addresses.`,
	Example: `  # Scan for 5 seconds (default)
  termfolio scan

  # Longer scan on a busy network
  termfolio scan --timeout 15`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanTimeout, "timeout", 5, "Scan timeout in seconds")
}

func runScan(cmd *cobra.Command, args []string) error {
	if scanTimeout <= 0 {
		return fmt.Errorf("invalid timeout %d: must be positive", scanTimeout)
	}
	timeout := time.Duration(scanTimeout) * time.Second

	printer := ui.NewPrinter(cmd.OutOrStdout())
	printer.PrintHeader("Network scan", "termfolio scan",
		ui.Param{Key: "Service", Value: discovery.ServiceType + "." + discovery.ServiceDomain},
		ui.Param{Key: "Timeout", Value: timeout.String()},
	)

	instances, err := discovery.ScanForInstances(cmd.Context(), timeout)
	if err != nil {
		printer.PrintFailure("Scan failed", err,
			"Check that multicast traffic is allowed on this network",
			"Make sure a firewall is not blocking UDP port 5353",
		)
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(instances) == 0 {
		printer.PrintWarning("No termfolio servers found",
			"Start a server with 'termfolio serve --advertise'",
			"Make sure both machines are on the same network",
			"Try increasing --timeout on slower networks",
		)
		return nil
	}

	printer.PrintInstances(instances)
	return nil
}
