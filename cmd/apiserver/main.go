// API server entry point for MolCanvas.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/turtacn/MolCanvas/internal/bootstrap"
	"github.com/turtacn/MolCanvas/internal/config"
	"github.com/turtacn/MolCanvas/internal/infrastructure/monitoring/logging"
)

// version is injected at build time via ldflags.
var version = "dev"

const defaultConfigPath = "configs/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	httpPort := flag.Int("port", 0, "HTTP server port (overrides config)")
	migrationsURL := flag.String("migrations", "file://migrations", "database migrations source URL (empty to skip)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: falling back to environment configuration: %v\n", err)
		cfg, err = config.LoadFromEnv()
		if err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
			os.Exit(1)
		}
	}

	if *httpPort > 0 {
		cfg.Server.Port = *httpPort
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: logger initialization failed: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting molcanvas API server",
		logging.String("version", version),
		logging.Int("port", cfg.Server.Port),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bootstrap.Run(ctx, cfg, logger, bootstrap.Options{
		Version:       version,
		MigrationsURL: *migrationsURL,
	}); err != nil {
		logger.Error("server exited with error", logging.Err(err))
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// loadConfig reads the YAML config file, erroring if the file is absent so
// the caller can decide to fall back to environment defaults.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return config.Load(path)
}

// newLogger builds the process logger from the loaded log configuration.
func newLogger(cfg *config.Config) (logging.Logger, error) {
	output := cfg.Log.Output
	if output == "" {
		output = "stdout"
	}

	return logging.NewLogger(logging.LogConfig{
		Level:            cfg.Log.Level,
		Format:           cfg.Log.Format,
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	})
}

//Personal.AI order the ending
