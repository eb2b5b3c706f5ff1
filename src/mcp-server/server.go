// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/pem-outline/src/config"
	"github.com/H0llyW00dzZ/pem-outline/src/logger"
	"github.com/H0llyW00dzZ/pem-outline/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/pem-outline/src/version"
	"github.com/mark3labs/mcp-go/server"
)

var appVersion = version.Version // default version

// GetVersion returns the current version of the MCP server.
//
// The version is initially set to the default from the version package,
// but can be overridden when calling Run() with a specific version string.
func GetVersion() string {
	return appVersion
}

// Run starts the MCP server with the PEM analysis tools on stdio.
//
// Configuration:
//   - Loads config from the PEM_OUTLINE_CONFIG_FILE environment variable
//   - Falls back to the default config if the variable is not set
//
// Logging goes to logging.file, or stderr when no file is configured, and is
// off unless logging.silent is false. Stdout carries the protocol only.
//
// Run returns when stdin is closed, on a server error, or with an error
// wrapping [context.Canceled] after SIGINT or SIGTERM.
func Run(version string) error {
	appVersion = version

	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := newServer(cfg, version, log)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	log.Printf("%s %s listening on stdio", serverName, version)
	return serve(ctx, s, os.Stdin, os.Stdout)
}

// newServer assembles the server with every default tool, resource and prompt.
func newServer(cfg *config.Config, version string, log logger.Logger) (*server.MCPServer, error) {
	tools, toolsWithConfig := createTools()

	instructions, err := loadInstructions(templates.MagicEmbed, tools, toolsWithConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load instructions: %w", err)
	}

	return NewServerBuilder().
		WithConfig(cfg).
		WithEmbed(templates.MagicEmbed).
		WithVersion(version).
		WithLogger(log).
		WithTools(tools...).
		WithToolsWithConfig(toolsWithConfig...).
		WithDefaultResources().
		WithPrompts(createPrompts()...).
		WithInstructions(instructions).
		Build()
}

// serve runs s over the given streams until ctx is cancelled or the
// transport stops.
func serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	stdioServer := server.NewStdioServer(s)

	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, in, out)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}

// newLogger builds the MCP logger described by the logging section. Debug
// entries are only written when logging.debug is set.
func newLogger(cfg *config.Config) (logger.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	if cfg.Logging.File != "" && !cfg.Logging.Silent {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	base := logger.NewMCPLogger(w, cfg.Logging.Silent)
	if cfg.Logging.Debug {
		return base, closeFn, nil
	}
	return infoOnly{base}, closeFn, nil
}

// infoOnly drops debug entries.
type infoOnly struct{ logger.Logger }

func (infoOnly) Debugf(string, ...any) {}
