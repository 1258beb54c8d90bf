// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/odoo-jsonrpc/src/cli"
	"github.com/H0llyW00dzZ/odoo-jsonrpc/src/logger"
	verpkg "github.com/H0llyW00dzZ/odoo-jsonrpc/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

// Exit codes returned by run.
const (
	exitOK        = 0
	exitFailed    = 1
	exitUsage     = 2
	exitCancelled = 130 // Standard exit code for SIGINT
)

func main() {
	// Create CLI logger; stdout is reserved for command output
	log := logger.NewCLILogger()
	log.SetOutput(os.Stderr)

	// Set up signal handling using signal.NotifyContext for cleaner cancellation
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, log)
	stop()

	os.Exit(code)
}

// run executes the CLI and maps its outcome to an exit code.
func run(ctx context.Context, log logger.Logger) int {
	// Channel to signal completion
	done := make(chan error, 1)

	go func() {
		done <- cli.Execute(ctx, version, log)
	}()

	select {
	case err := <-done:
		if err == nil {
			return exitOK
		}
		log.Printf("Error: %v", err)
		if !cli.OperationPerformed {
			// usage or configuration error
			return exitUsage
		}
		return exitFailed
	case <-ctx.Done():
		log.Println("Operation cancelled by signal. Exiting...")
		// Give the CLI a moment to clean up
		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
		}
		return exitCancelled
	}
}
