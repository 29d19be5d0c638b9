package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fitnote/local-app/pkg/adapter"
	"fitnote/local-app/pkg/cli"
	"fitnote/local-app/pkg/config"
	"fitnote/local-app/pkg/data"
	"fitnote/local-app/pkg/log"
	"fitnote/local-app/pkg/session"
	"fitnote/local-app/pkg/storage"
)

// bootstrap initializes and runs the Fitnote application. It sets up
// signal handling, loads configuration, wires the components (logger,
// storage, data manager, session manager, CLI adapter), runs the CLI,
// and handles graceful shutdown.
func bootstrap() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Load configuration
	cfg, err := config.ConfigLoad(config.DefaultPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger, err := log.NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		if err := logger.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to close logger: %v\n", err)
		}
	}()

	logger.Info(context.Background(), "Application started", log.Fields{"driver": cfg.StorageDriver})

	// Initialize storage
	store, err := storage.NewStore(cfg, logger)
	if err != nil {
		logger.Error(context.Background(), "Failed to initialize storage", log.Fields{"error": err})
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error(context.Background(), "Failed to close storage", log.Fields{"error": err})
		}
	}()

	// Initialize data manager
	dataManager, err := data.NewDataManager(store, cfg, logger)
	if err != nil {
		logger.Error(context.Background(), "Failed to initialize data manager", log.Fields{"error": err})
		return fmt.Errorf("failed to initialize data manager: %w", err)
	}

	// Initialize session manager
	sessionManager, err := session.NewSessionManager(dataManager, logger)
	if err != nil {
		logger.Error(context.Background(), "Failed to initialize session manager", log.Fields{"error": err})
		return fmt.Errorf("failed to initialize session manager: %w", err)
	}

	// Initialize CLI adapter
	cliAdapter, err := adapter.NewCLIAdapter(sessionManager, logger)
	if err != nil {
		logger.Error(context.Background(), "Failed to initialize CLI adapter", log.Fields{"error": err})
		return fmt.Errorf("failed to initialize CLI adapter: %w", err)
	}

	// Create CLI
	cliInstance, err := cli.NewCLI(cliAdapter, logger)
	if err != nil {
		logger.Error(context.Background(), "Failed to initialize CLI", log.Fields{"error": err})
		return fmt.Errorf("failed to initialize CLI: %w", err)
	}
	defer cliInstance.Close()

	// Set up graceful shutdown
	go func() {
		<-sigChan
		logger.Info(context.Background(), "Received interrupt signal, shutting down", nil)
		fmt.Println("\nReceived interrupt signal. Shutting down...")
		cliInstance.Stop()
	}()

	// Run CLI
	if err := cliInstance.Run(); err != nil {
		logger.Error(context.Background(), "CLI error", log.Fields{"error": err})
		return fmt.Errorf("CLI error: %w", err)
	}

	logger.Info(context.Background(), "Application shutting down", nil)
	fmt.Println("Goodbye!")
	return nil
}
