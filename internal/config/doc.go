// Package config provides user settings for termfolio.
//
// Settings live in a YAML file at a platform-appropriate location:
//   - Linux: $XDG_CONFIG_HOME/termfolio/config.yaml or $HOME/.config/termfolio/config.yaml
//   - macOS: $HOME/.config/termfolio/config.yaml
//   - Windows: %LOCALAPPDATA%\termfolio\config.yaml
//
// A missing file is not an error; defaults are used instead. Command-line
// flags override whatever the file says.
//
// # Usage Example
//
//	settings, err := config.LoadSettings()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	settings.Server.Port = 9000
//	if err := settings.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global settings use sync.Once for safe initialization across
// goroutines. File writes are serialized and atomic (temp file + rename).
package config
