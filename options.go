package transcode

import (
	"os"
	"strconv"

	"go.uber.org/zap"
)

// Environment variables read once by Default.
const (
	// EnvEngine selects the engine: auto, scalar or lanes.
	EnvEngine = "TRANSCODE_ENGINE"
	// EnvNoSIMD forces the scalar engine whenever the engine is auto.
	EnvNoSIMD = "TRANSCODE_NO_SIMD"
)

type config struct {
	engine Engine
	logger *zap.Logger
}

// Option configures a Converter.
type Option func(c *config)

// WithEngine requests an engine. EngineAuto (the default) defers to the
// CPU probe and TRANSCODE_NO_SIMD.
func WithEngine(e Engine) Option {
	return func(c *config) {
		c.engine = e
	}
}

// WithLogger sets the logger used to report engine selection. The package
// logger is used otherwise.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// NoSIMDEnv reports whether TRANSCODE_NO_SIMD is set. Any non-empty value
// counts, unless it parses as a false boolean.
func NoSIMDEnv() bool {
	val := os.Getenv(EnvNoSIMD)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// envOptions turns the environment into options for Default.
func envOptions(log *zap.Logger) []Option {
	val, ok := os.LookupEnv(EnvEngine)
	if !ok {
		return nil
	}
	e, err := ParseEngine(val)
	if err != nil {
		log.Warn("ignoring engine override", zap.String("env", EnvEngine), zap.Error(err))
		return nil
	}
	log.Debug("engine override", zap.String("env", EnvEngine), zap.Stringer("engine", e))
	return []Option{WithEngine(e)}
}
