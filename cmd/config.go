package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for daylog.

Shows the configuration file location, whether it exists, and all
current settings. Configuration values are merged from the config file
with sensible defaults.

By default, daylog works without any configuration file. All settings
have defaults:
  - transcriber_url: OpenAI audio transcriptions endpoint
  - transcriber_model: whisper-1
  - language: en
  - theme: (empty, uses the default TUI theme)

Examples:

  Display current configuration:
    daylog config                  Show all current settings

  Create a starter config file:
    daylog config init

Configuration file location:
  ~/.config/daylog/config.toml     Linux/macOS
  %APPDATA%\daylog\config.toml     Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config file",
	Long: `Write a documented config file populated with the defaults to the
standard config location. Refuses to overwrite an existing file.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}

// showConfig displays the current effective configuration
func showConfig() {
	configPath := deps.Services.Config.GetPath()
	fileExists := deps.Services.Config.Exists()
	cfg := deps.Services.Config.Get()

	// Display header
	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for daylog")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	// Display config file location and status
	_, _ = fmt.Fprintf(deps.Stdout, "Config file:       %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:            File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:            No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	// Display current settings
	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Transcriber URL:   %s\n", cfg.TranscriberURL)
	_, _ = fmt.Fprintf(deps.Stdout, "Transcriber Model: %s\n", cfg.TranscriberModel)
	_, _ = fmt.Fprintf(deps.Stdout, "Language:          %s\n", cfg.Language)

	// Display theme with special handling for empty value
	if cfg.Theme == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "Theme:             (default)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Theme:             %s\n", cfg.Theme)
	}

	_, _ = fmt.Fprintln(deps.Stdout)

	// Display helpful information if using defaults
	if !fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Run 'daylog config init' to create a starter config file.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}

// initConfig writes a starter config file
func initConfig() {
	if err := deps.Services.Config.Init(); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to create config file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", deps.Services.Config.GetPath())
}
