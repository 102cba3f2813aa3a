package zap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LerianStudio/lib-guard/log"
	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const callerSkipFrames = 1

// Environment selects the baseline logger profile.
type Environment string

// Supported environments.
const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentDevelopment Environment = "development"
	EnvironmentLocal       Environment = "local"
)

// ErrInvalidConfig is returned by New for a config that fails validation.
var ErrInvalidConfig = errors.New("invalid zap config")

// Config holds the logger initialization inputs.
type Config struct {
	Environment Environment
	// Level overrides the environment default ("debug" locally, "info" otherwise).
	// It accepts the names understood by log.ParseLevel.
	Level string
	// OTelLibraryName is the instrumentation scope used by the OTel log bridge.
	OTelLibraryName string
}

func (c Config) validate() error {
	if strings.TrimSpace(c.OTelLibraryName) == "" {
		return fmt.Errorf("%w: OTelLibraryName is required", ErrInvalidConfig)
	}

	switch c.Environment {
	case EnvironmentProduction, EnvironmentStaging, EnvironmentDevelopment, EnvironmentLocal:
		return nil
	default:
		return fmt.Errorf("%w: invalid environment %q", ErrInvalidConfig, c.Environment)
	}
}

// New builds a JSON logger teed into the OpenTelemetry log bridge.
func New(cfg Config) (*Logger, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	level, err := resolveLevel(cfg)
	if err != nil {
		return nil, err
	}

	base := baseConfig(cfg.Environment)
	base.Level = level
	base.DisableStacktrace = true

	built, err := base.Build(
		zap.AddCallerSkip(callerSkipFrames),
		zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, otelzap.NewCore(cfg.OTelLibraryName))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return &Logger{logger: built, atomicLevel: level}, nil
}

func resolveLevel(cfg Config) (zap.AtomicLevel, error) {
	if strings.TrimSpace(cfg.Level) != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return zap.AtomicLevel{}, fmt.Errorf("%w: invalid level %q: %w", ErrInvalidConfig, cfg.Level, err)
		}

		return zap.NewAtomicLevelAt(toZapLevel(parsed)), nil
	}

	if cfg.Environment == EnvironmentDevelopment || cfg.Environment == EnvironmentLocal {
		return zap.NewAtomicLevelAt(zapcore.DebugLevel), nil
	}

	return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
}

func baseConfig(environment Environment) zap.Config {
	cfg := zap.NewProductionConfig()
	if environment == EnvironmentDevelopment || environment == EnvironmentLocal {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.Encoding = "json"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return cfg
}
