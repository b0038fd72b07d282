// Package main implements paneshift, a tiling tab editor for the terminal.
// Paneshift arranges editor tabs in a binary tree of splits and lets you
// shift tabs between panes, move focus, and stretch splits from the
// keyboard.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/paneshift/internal/app"
	"github.com/Gaurav-Gosain/paneshift/internal/config"
	"github.com/Gaurav-Gosain/paneshift/internal/editor"
	"github.com/Gaurav-Gosain/paneshift/internal/input"
	"github.com/Gaurav-Gosain/paneshift/internal/server"
	"github.com/Gaurav-Gosain/paneshift/internal/theme"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var debugMode bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "paneshift [file...]",
		Short: "Tiling tab editor for the terminal",
		Long: `Paneshift - Tiling Tab Editor

A terminal editor shell that arranges tabs in a binary tree of split panes.
Shift the active tab between panes, move focus, and stretch splits entirely
from the keyboard.`,
		Example: `  # Open files in a single pane
  paneshift main.go util.go

  # Run with debug logging
  paneshift --debug

  # Run as SSH server
  paneshift ssh --port 2222

  # Edit configuration
  paneshift config edit

  # List all keybindings
  paneshift keybinds list`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocal(args)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Run paneshift as SSH server",
		Long: `Run paneshift as an SSH server

Allows remote connections to paneshift via SSH. The server will generate
a host key automatically if not specified.`,
		Example: `  # Start SSH server on default port
  paneshift ssh

  # Start on custom port
  paneshift ssh --port 2222`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSSHServer(sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage paneshift configuration",
		Long:  `Manage paneshift configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the paneshift configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the paneshift configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		Long:  `Display all configured keybindings in a formatted table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listKeybindings()
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd)

	rootCmd.AddCommand(sshCmd, configCmd, keybindsCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the application logger. Debug logs go to a state file
// so they never corrupt the TUI; without --debug, logging is discarded.
func newLogger() *log.Logger {
	if !debugMode {
		return log.New(io.Discard)
	}
	path, err := xdg.StateFile("paneshift/debug.log")
	if err != nil {
		return log.New(io.Discard)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard)
	}
	logger := log.New(f)
	logger.SetLevel(log.DebugLevel)
	return logger
}

func runLocal(files []string) error {
	logger := newLogger()

	// Set up the input handler to break circular dependency
	app.SetInputHandler(input.HandleInput)

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}
	keybindRegistry := config.NewKeybindRegistry(userConfig)

	theme.Initialize(userConfig.Appearance.Theme)

	ed := editor.New(logger, files...)
	instance := app.New(ed, userConfig, keybindRegistry, logger)

	p := tea.NewProgram(instance)

	// Reload keybindings and appearance on config file changes.
	watchCtx, cancelWatch := context.WithCancel(context.Background())
	defer cancelWatch()
	go func() {
		err := config.Watch(watchCtx, logger, func(cfg *config.UserConfig) {
			p.Send(app.ConfigReloadedMsg{Config: cfg})
		})
		if err != nil && watchCtx.Err() == nil {
			logger.Warn("config watcher stopped", "err", err)
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func runSSHServer(sshHost, sshPort, sshKeyPath string) error {
	logger := log.New(os.Stderr)
	if debugMode {
		logger.SetLevel(log.DebugLevel)
	}

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}
	theme.Initialize(userConfig.Appearance.Theme)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()

	if err := server.Start(ctx, &server.Config{
		Host:    sshHost,
		Port:    sshPort,
		KeyPath: sshKeyPath,
		Logger:  logger,
	}); err != nil && ctx.Err() == nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

func editConfigFile() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Config file doesn't exist, creating default at: %s\n", configPath)
		if _, err := config.LoadUserConfig(); err != nil {
			return fmt.Errorf("could not create config file: %w", err)
		}
	}

	editorCmd := os.Getenv("EDITOR")
	if editorCmd == "" {
		editorCmd = os.Getenv("VISUAL")
	}
	if editorCmd == "" {
		for _, e := range []string{"vim", "vi", "nano", "emacs"} {
			if _, err := exec.LookPath(e); err == nil {
				editorCmd = e
				break
			}
		}
	}
	if editorCmd == "" {
		return fmt.Errorf("no editor found. Please set $EDITOR environment variable")
	}

	cmd := exec.Command(editorCmd, configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func resetConfigToDefaults() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Warning: This will overwrite your existing configuration at:\n")
		fmt.Printf("  %s\n\n", configPath)
		fmt.Printf("Are you sure you want to reset to defaults? (yes/no): ")

		var response string
		fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))

		if response != "yes" && response != "y" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := config.WriteDefaultConfig(configPath); err != nil {
		return err
	}

	fmt.Printf("Configuration reset to defaults\n")
	fmt.Printf("  Location: %s\n", configPath)
	fmt.Println("\nYou can customize it with: paneshift config edit")
	return nil
}

// listKeybindings prints all configured keybindings in a pretty table
func listKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintln(os.Stderr, "Using default keybindings...")
		userConfig = config.DefaultConfig()
	}

	registry := config.NewKeybindRegistry(userConfig)
	printKeybindingsTable(userConfig, registry)
	return nil
}

func printKeybindingsTable(cfg *config.UserConfig, registry *config.KeybindRegistry) {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().
		Padding(0, 1)

	fmt.Println()
	fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Render("Paneshift Keybindings"))
	fmt.Println()

	for _, section := range cfg.Keybindings.Sections() {
		actions := make([]string, 0, len(section.Actions))
		for action := range section.Actions {
			actions = append(actions, action)
		}
		sort.Strings(actions)

		rows := [][]string{}
		for _, action := range actions {
			keys := registry.GetKeys(action)
			if len(keys) == 0 {
				continue
			}

			desc := config.ActionDescriptions[action]
			if desc == "" {
				desc = action
			}

			rows = append(rows, []string{strings.Join(keys, ", "), desc})
		}

		if len(rows) == 0 {
			continue
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
			Headers("Keys", "Action").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == -1 {
					return headerStyle
				}
				return cellStyle
			})

		fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Render(section.Title))
		fmt.Println(t.Render())
		fmt.Println()
	}
}
