package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"user-record-demo/internal/config"
	"user-record-demo/internal/domain/user"
	"user-record-demo/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatalf("application exited with error: %v", err)
	}
}

// run loads configuration, initializes logging, and writes the demo
// user's display line to out. Standard output carries only that line;
// log entries go to the configured logger output (stderr by default).
func run(out io.Writer) error {
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer syncLogger(l)

	l.Debug("configuration loaded",
		zap.String("log_level", cfg.Logger.Level),
		zap.String("log_format", cfg.Logger.Format),
		zap.String("log_output", cfg.Logger.OutputPath),
	)

	u := user.New("Alice", "alice@example.com")

	l.Info("displaying user",
		zap.Uint64("id", u.ID),
		zap.String("name", u.Name),
		zap.String("email", u.Email),
	)

	u.Display(out)

	return nil
}

// initLogger initializes the application logger
func initLogger(cfg *config.Config) (*zap.Logger, error) {
	loggerCfg := logger.Config{
		Level:          cfg.Logger.Level,
		Format:         cfg.Logger.Format,
		OutputPath:     cfg.Logger.OutputPath,
		EnableSampling: cfg.Logger.EnableSampling,
		ServiceName:    cfg.Logger.ServiceName,
		ServiceVersion: cfg.Logger.ServiceVersion,
		Environment:    getEnvironment(),
	}

	return logger.NewWithConfig(loggerCfg)
}

// syncLogger flushes buffered log entries before the process exits.
func syncLogger(l *zap.Logger) {
	if err := l.Sync(); err != nil {
		// Ignore sync errors for stdout/stderr
		if err.Error() != "sync /dev/stdout: invalid argument" &&
			err.Error() != "sync /dev/stderr: invalid argument" {
			l.Error("failed to sync logger", zap.Error(err))
		}
	}
}

// getConfigPath returns the configuration path
func getConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "."
}

// getEnvironment returns the application environment
func getEnvironment() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "development"
}
