package slogadapter

import (
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/loglist/xlog"
)

// Format selects the slog handler format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatText
)

// Config is an explicit, code-first configuration for slog + xlog.
// One call to Use wires a slog-backed facility and sets it global.
type Config struct {
	Writer             io.Writer            // default: os.Stdout
	MinLevel           xlog.Level           // the facility and slog both use this
	Format             Format               // JSON (default) or Text
	HandlerOptions     *slog.HandlerOptions // optional; Level is managed by Use via LevelVar
	TimestampFieldName string               // default "ts"
	Clock              xclock.Clock         // optional; default xclock.Now()
}

// Use builds a slog-backed facility from Config, sets it as global, and returns it.
func Use(cfg Config) *xlog.Facility {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	opts := slog.HandlerOptions{}
	if cfg.HandlerOptions != nil {
		opts = *cfg.HandlerOptions
	}

	// Use a LevelVar to allow dynamic SetMinLevel on the adapter.
	var lv slog.LevelVar
	lv.Set(slog.Level(cfg.MinLevel))
	opts.Level = &lv

	var h slog.Handler
	if cfg.Format == FormatText {
		h = slog.NewTextHandler(w, &opts)
	} else {
		h = slog.NewJSONHandler(w, &opts)
	}

	f, err := xlog.NewBuilder().
		WithAdapter(NewWithTimestampKey(slog.New(h), &lv, cfg.TimestampFieldName)).
		WithMinLevel(cfg.MinLevel).
		WithClock(cfg.Clock).
		Build()
	if err != nil {
		panic(err)
	}
	xlog.SetGlobal(f)
	return f
}
