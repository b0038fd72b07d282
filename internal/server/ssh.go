// Package server provides SSH server functionality for paneshift.
package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"

	"github.com/Gaurav-Gosain/paneshift/internal/app"
	"github.com/Gaurav-Gosain/paneshift/internal/config"
	"github.com/Gaurav-Gosain/paneshift/internal/editor"
	"github.com/Gaurav-Gosain/paneshift/internal/input"
)

// Config holds configuration for the SSH server.
type Config struct {
	Host    string
	Port    string
	KeyPath string
	Logger  *log.Logger
}

// Start initializes and runs the SSH server. It blocks until ctx is
// canceled, then shuts the server down.
func Start(ctx context.Context, cfg *Config) error {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	hostKeyPath := cfg.KeyPath
	if hostKeyPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		hostKeyPath = filepath.Join(homeDir, ".ssh", "paneshift_host_key")
	}

	server, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler(logger)),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	go func() {
		logger.Info("starting SSH server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil {
			logger.Error("SSH server error", "err", err)
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down SSH server")
	return server.Shutdown(ctx)
}

// teaHandler creates a fresh paneshift instance for each SSH session.
// Sessions are ephemeral; each connection gets its own editor state.
func teaHandler(logger *log.Logger) func(ssh.Session) (tea.Model, []tea.ProgramOption) {
	return func(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, active := sshSession.Pty()
		if !active {
			return nil, nil
		}

		userConfig, err := config.LoadUserConfig()
		if err != nil {
			logger.Warn("failed to load config for SSH session, using defaults", "err", err)
			userConfig = config.DefaultConfig()
		}
		keybindRegistry := config.NewKeybindRegistry(userConfig)

		app.SetInputHandler(input.HandleInput)

		ed := editor.New(logger, sshSession.Command()...)
		instance := app.New(ed, userConfig, keybindRegistry, logger)
		instance.Width = pty.Window.Width
		instance.Height = pty.Window.Height

		return instance, nil
	}
}
