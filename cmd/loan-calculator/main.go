package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iwvelando/loan-calculator/internal/calculator"
	"github.com/iwvelando/loan-calculator/internal/config"
	"github.com/iwvelando/loan-calculator/pkg/constants"
	"github.com/iwvelando/loan-calculator/pkg/output"
	"github.com/iwvelando/loan-calculator/pkg/validation"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration
func initializeLogger(loggingConfig config.LoggingConfig) (*zap.Logger, error) {
	level := loggingConfig.Level
	if level == "" {
		level = constants.DefaultLogLevel
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = constants.DefaultLogFormat
	}
	if err := validation.ValidateLogFormat(format); err != nil {
		return nil, err
	}

	// Both presets write to stderr, leaving stdout to the result.
	var config zap.Config
	if format == "console" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		config.OutputPaths = []string{loggingConfig.OutputFile}
		config.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return config.Build()
}

// run performs one calculation. Every outcome, including a rejected request,
// ends with a normal return so the process exits with status 0.
func run(args []string, stdout, stderr io.Writer) {
	flags := config.NewFlagSet("loan-calculator")
	flags.SetOutput(io.Discard)

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintln(stdout, "Usage of loan-calculator:")
			flags.SetOutput(stdout)
			flags.PrintDefaults()
			return
		}
		_ = output.IncorrectParameters(stdout)
		return
	}
	if flags.NArg() > 0 {
		_ = output.IncorrectParameters(stdout)
		return
	}

	configLocation, _ := flags.GetString(constants.FlagConfig)
	conf, err := config.LoadConfiguration(configLocation, flags)
	if err != nil {
		fmt.Fprintf(stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", configLocation, err)
		_ = output.IncorrectParameters(stdout)
		return
	}

	logger, err := initializeLogger(conf.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		_ = output.IncorrectParameters(stdout)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	renderer, err := output.NewRenderer(conf.Output.Format)
	if err != nil {
		logger.Error(err.Error(),
			zap.String("op", "main"),
		)
		_ = output.IncorrectParameters(stdout)
		return
	}

	req, err := config.RequestFromFlags(flags)
	if err != nil {
		logger.Warn("failed to read loan parameters",
			zap.String("op", "main"),
			zap.Error(err),
		)
		_ = output.IncorrectParameters(stdout)
		return
	}

	calc, err := calculator.NewDispatcher(logger).Dispatch(req)
	if err != nil {
		logger.Info("rejected loan request",
			zap.String("op", "main"),
			zap.Error(err),
		)
		_ = output.IncorrectParameters(stdout)
		return
	}

	if err := renderer.Render(stdout, calc); err != nil {
		logger.Error("failed to write result",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}

func main() {
	run(os.Args[1:], os.Stdout, os.Stderr)
}
