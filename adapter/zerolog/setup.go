package zerologadapter

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/loglist/xlog"
)

// Config is an explicit, code-first configuration for zerolog + xlog.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer            io.Writer // default: os.Stdout
	MinLevel          xlog.Level
	Settings          *xlog.Settings // optional; overrides MinLevel and adds per-name levels
	Console           bool           // pretty console output instead of JSON
	ConsoleTimeFormat string         // only used if Console==true; default time.RFC3339Nano
	Caller            bool           // include caller in logs
	CallerSkip        int            // frames to skip when resolving caller; default 5
	Clock             xclock.Clock   // optional; default xclock.Now()
}

// Use builds a zerolog-backed facility from Config, sets it as the global
// facility, and returns it.
func Use(cfg Config) *xlog.Facility {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.Caller && cfg.CallerSkip <= 0 {
		cfg.CallerSkip = 5
	}

	var zl zerolog.Logger
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: w, TimeFormat: cfg.ConsoleTimeFormat}
		if cw.TimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		}
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}

	if cfg.Caller {
		zerolog.CallerSkipFrameCount = cfg.CallerSkip
		zl = zl.With().Caller().Logger()
	}

	b := xlog.NewBuilder().
		WithAdapter(New(zl)).
		WithMinLevel(cfg.MinLevel).
		WithClock(cfg.Clock)
	if cfg.Settings != nil {
		b.WithSettings(*cfg.Settings)
	}
	// Build propagates the effective min level down to zerolog.
	f, err := b.Build()
	if err != nil {
		// In practice, Build only fails with a nil adapter which cannot happen here.
		panic(err)
	}

	xlog.SetGlobal(f)
	return f
}
