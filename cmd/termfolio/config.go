package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexchen/termfolio/internal/config"
	"github.com/alexchen/termfolio/internal/portfolio"
	"github.com/alexchen/termfolio/internal/ui"
)

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the settings file",
	Long: `Create and inspect the termfolio settings file.

The file lives in the user config directory (for example
~/.config/termfolio/config.yaml on Linux) unless --config points elsewhere.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file and a starter content file",
	Long: `Write a settings file with default values and, next to it, a
content.yaml holding the built-in portfolio. Edit content.yaml to make the
terminal yours; the settings file already points at it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printer := ui.NewPrinter(cmd.OutOrStdout())

		path, err := settingsPath()
		if err != nil {
			return err
		}
		contentFile := filepath.Join(filepath.Dir(path), starterContentFile)

		if err := config.CreateDefaultSettingsAt(path, contentFile); err != nil {
			printer.PrintFailure("Could not create settings", err,
				"Use 'termfolio config show' to inspect an existing file",
				"Remove the existing file to start over",
			)
			return err
		}
		written, err := writeStarterContent(contentFile)
		if err != nil {
			printer.PrintFailure("Could not write starter content", err,
				"Check that the settings directory is writable",
			)
			return err
		}

		printer.PrintSuccess("Settings file created",
			ui.Param{Key: "Path", Value: path},
			ui.Param{Key: "Content", Value: contentFile},
		)
		if !written {
			printer.PrintWarning("Kept existing content file",
				"The settings file points at "+contentFile,
			)
		}
		return nil
	},
}

const starterContentFile = "content.yaml"

// writeStarterContent copies the built-in portfolio to path. An existing
// file is kept and reported as not written.
func writeStarterContent(path string) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if errors.Is(err, os.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create content file: %w", err)
	}
	if _, err := f.Write(portfolio.DefaultYAML()); err != nil {
		f.Close()
		return false, fmt.Errorf("failed to write content file: %w", err)
	}
	return true, f.Close()
}

// settingsPath resolves --config, falling back to the user config directory.
func settingsPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		data, err := settings.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}
