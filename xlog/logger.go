package xlog

import (
	"sync"
	"sync/atomic"
)

// Logger is a named handle onto a Facility. Loggers obtained from
// Facility.Logger are shared per name; With derives unshared children.
type Logger struct {
	f          *Facility
	name       string
	adapter    Adapter
	baseFields []Field

	// Logger-local observers, in addition to the facility's subscribers.
	// Lock-free reads via atomic.Value; synchronized updates via obsMu.
	// Stored value is []Observer and MUST be treated as immutable by readers.
	observers atomic.Value // holds []Observer
	obsMu     sync.Mutex
}

func newLogger(f *Facility, name string) *Logger {
	l := &Logger{
		f:       f,
		name:    name,
		adapter: f.adapter,
	}
	l.observers.Store(([]Observer)(nil))
	return l
}

// Name returns the source name stamped on every entry from this logger.
func (l *Logger) Name() string { return l.name }

// Enabled reports whether logs at 'level' would be emitted by this logger.
// Use to avoid building fields in hot paths when disabled.
func (l *Logger) Enabled(level Level) bool {
	return l.f.Enabled(l.name, level)
}

// Level entry points returning fluent builders.

func (l *Logger) Trace() *Event { return getEvent(l, LevelTrace) }
func (l *Logger) Debug() *Event { return getEvent(l, LevelDebug) }
func (l *Logger) Info() *Event  { return getEvent(l, LevelInfo) }
func (l *Logger) Warn() *Event  { return getEvent(l, LevelWarn) }
func (l *Logger) Error() *Event { return getEvent(l, LevelError) }

// At returns a builder for an arbitrary level.
func (l *Logger) At(level Level) *Event { return getEvent(l, level) }

// With returns a child logger with bound fields. The child keeps the name.
func (l *Logger) With(fs ...Field) *Logger {
	child := &Logger{
		f:          l.f,
		name:       l.name,
		adapter:    l.adapter.With(fs),
		baseFields: append(copyFields(nil, l.baseFields), fs...),
	}
	// Inherit a snapshot of logger-local observers.
	child.observers.Store(l.snapshotObservers())
	return child
}

func (l *Logger) snapshotObservers() []Observer {
	v := l.observers.Load()
	if v == nil {
		return nil
	}
	cur := v.([]Observer)
	if len(cur) == 0 {
		return nil
	}
	out := make([]Observer, len(cur))
	copy(out, cur)
	return out
}

// AddObserver attaches an observer to this logger only.
func (l *Logger) AddObserver(o Observer) {
	l.obsMu.Lock()
	defer l.obsMu.Unlock()
	cur := l.snapshotObservers()
	cur = append(cur, o)
	l.observers.Store(cur)
}

func (l *Logger) emit(level Level, m message, evFields []Field, cause error) {
	if !l.Enabled(level) {
		return
	}

	e := Entry{
		// Single authoritative timestamp from the facility clock
		At:      l.f.now(),
		Name:    l.name,
		Level:   level,
		Message: m.realize(),
		Cause:   cause,
		Fields:  evFields,
	}

	// Fast path: adapter handles bound fields internally; pass only event fields.
	l.adapter.Log(&e)

	subs := l.f.subscriptions()
	local, _ := l.observers.Load().([]Observer)
	if len(subs) == 0 && len(local) == 0 {
		return
	}

	// Observers see combined fields: base + event, in a slice they may keep.
	merged := make([]Field, 0, len(l.baseFields)+len(evFields))
	merged = append(merged, l.baseFields...)
	merged = append(merged, evFields...)
	e.Fields = merged

	for _, s := range subs {
		s.o.OnLog(e)
	}
	for _, o := range local {
		o.OnLog(e)
	}
}

func copyFields(dst, src []Field) []Field {
	if len(src) == 0 {
		return dst
	}
	return append(dst, src...)
}
