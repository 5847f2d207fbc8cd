package xlog

import (
	"github.com/roadrunner-server/errors"
	"github.com/trickstertwo/xclock"
)

// ErrNoAdapter is returned by Build when no Adapter was configured.
var ErrNoAdapter = errors.Str("xlog: no adapter configured, use xlog.Discard to log to observers only")

// Config for constructing a Facility (Factory data structure).
type Config struct {
	Adapter   Adapter
	MinLevel  Level
	Levels    map[string]Level // per logger name overrides of MinLevel
	Observers []Observer
	Clock     xclock.Clock // optional; defaults to xclock.Now()
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: Config{MinLevel: LevelInfo}}
}

func (b *Builder) WithAdapter(a Adapter) *Builder {
	b.cfg.Adapter = a
	return b
}

func (b *Builder) WithMinLevel(l Level) *Builder {
	b.cfg.MinLevel = l
	return b
}

// WithLevel overrides the minimum level for one logger name.
func (b *Builder) WithLevel(name string, l Level) *Builder {
	if b.cfg.Levels == nil {
		b.cfg.Levels = make(map[string]Level)
	}
	b.cfg.Levels[name] = l
	return b
}

// WithSettings applies levels loaded by ParseConfig.
func (b *Builder) WithSettings(s Settings) *Builder {
	b.cfg.MinLevel = s.MinLevel
	for name, l := range s.Levels {
		b.WithLevel(name, l)
	}
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

func (b *Builder) AddObserver(o Observer) *Builder {
	b.cfg.Observers = append(b.cfg.Observers, o)
	return b
}

// Build constructs the Facility (Factory + Builder).
func (b *Builder) Build() (*Facility, error) {
	const op = errors.Op("xlog_build")
	if b.cfg.Adapter == nil {
		return nil, errors.E(op, ErrNoAdapter)
	}
	f := newFacility(b.cfg)
	// Propagate settings into the adapter when supported.
	b.applyAdapterConfig(f)
	return f, nil
}

// adapterLevelSetter is an optional interface adapters can implement
// to receive min-level configuration from xlog.Builder/Config.
type adapterLevelSetter interface {
	SetMinLevel(Level)
}

// applyAdapterConfig applies Config-derived settings to the adapter if it
// supports them via optional interfaces (like adapterLevelSetter).
func (b *Builder) applyAdapterConfig(f *Facility) {
	if ls, ok := b.cfg.Adapter.(adapterLevelSetter); ok {
		ls.SetMinLevel(f.lowestLevel())
	}
}

// UseAdapter builds a Facility for the given adapter and min level, sets it
// as global, and returns it.
func UseAdapter(a Adapter, min Level, observers ...Observer) *Facility {
	b := NewBuilder().
		WithAdapter(a).
		WithMinLevel(min)
	for _, o := range observers {
		b.AddObserver(o)
	}
	f, err := b.Build()
	if err != nil {
		// Only a nil adapter fails; surface the programming error early.
		panic(err)
	}
	SetGlobal(f)
	return f
}
