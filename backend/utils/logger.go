package utils

import (
	"io"
	"log"
	"os"
)

// LoggerConfig configures InitLogger
type LoggerConfig struct {
	// Log format (text/json)
	Format string
	// Output stream, stdout by default
	Output io.Writer
	// Colorize the prefix for terminals
	EnableColors bool
}

// InitLogger builds the application logger
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	prefix := "[Course Catalog] "

	var logger *log.Logger
	if cfg.Format == "json" {
		logger = log.New(cfg.Output, prefix, log.LstdFlags|log.LUTC|log.Lmsgprefix)
	} else {
		if cfg.EnableColors {
			prefix = "\033[36m" + prefix + "\033[0m"
		}
		logger = log.New(cfg.Output, prefix, log.LstdFlags|log.Lshortfile|log.LUTC)
	}

	return logger
}
