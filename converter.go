package transcode

import (
	"sync"

	"github.com/ajroetker/go-highway/hwy"
	"go.uber.org/zap"

	"github.com/gottingen/transcode/internal/lanes"
)

// Converter runs every operation on one engine. It holds no mutable state
// and is safe for concurrent use.
type Converter struct {
	k kernel
}

// New returns a Converter for the configured engine.
func New(opts ...Option) *Converter {
	cfg := config{engine: EngineAuto}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger
	if log == nil {
		log = Logger()
	}

	e := cfg.engine
	if e == EngineAuto && NoSIMDEnv() {
		e = EngineScalar
	}
	c := &Converter{k: kernelFor(e)}
	log.Debug("transcode engine selected",
		zap.Stringer("requested", cfg.engine),
		zap.Stringer("engine", c.Engine()),
		zap.String("cpu", cpuFeature()),
		zap.String("accel", lanes.Accel),
		zap.String("hwy", hwy.CurrentName()),
		zap.Bool("native", lanes.Native),
	)
	return c
}

// Engine returns the engine the converter runs on; never EngineAuto.
func (c *Converter) Engine() Engine {
	return c.k.engine()
}

var (
	defaultConverter *Converter
	defaultOnce      sync.Once
)

// Default returns the process-wide Converter, configured once from the
// environment and the CPU probe.
func Default() *Converter {
	defaultOnce.Do(func() {
		defaultConverter = New(envOptions(Logger())...)
	})
	return defaultConverter
}
