package xlog

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/trickstertwo/xclock"
)

// Facility is the process-wide dispatcher behind every named Logger. It owns
// the backend Adapter, the level configuration and the list of subscribed
// Observers. Delivery is synchronous: the adapter first, then each observer
// in subscription order.
type Facility struct {
	adapter Adapter
	clock   xclock.Clock // nil means xclock.Now()

	minLevel atomic.Int64
	// Per-name overrides: lock-free reads via atomic.Value; updates under levelsMu.
	levels   atomic.Value // holds map[string]Level
	levelsMu sync.Mutex

	// Observers: lock-free reads via atomic.Value; synchronized updates via obsMu.
	// Stored value is []*subscription and MUST be treated as immutable by readers.
	observers atomic.Value
	obsMu     sync.Mutex

	loggers sync.Map // name -> *Logger
}

type subscription struct {
	o Observer
}

// Factory: internal constructor.
func newFacility(cfg Config) *Facility {
	f := &Facility{
		adapter: cfg.Adapter,
		clock:   cfg.Clock,
	}
	f.minLevel.Store(int64(cfg.MinLevel))

	levels := make(map[string]Level, len(cfg.Levels))
	for name, lvl := range cfg.Levels {
		levels[name] = lvl
	}
	f.levels.Store(levels)

	subs := make([]*subscription, 0, len(cfg.Observers))
	for _, o := range cfg.Observers {
		subs = append(subs, &subscription{o: o})
	}
	f.observers.Store(subs)
	return f
}

// Logger returns the logger registered under name, creating it on first use.
// The empty name is the root logger.
func (f *Facility) Logger(name string) *Logger {
	if v, ok := f.loggers.Load(name); ok {
		return v.(*Logger)
	}
	v, _ := f.loggers.LoadOrStore(name, newLogger(f, name))
	return v.(*Logger)
}

// LoggerOf returns the logger named after the dynamic type of v.
func (f *Facility) LoggerOf(v any) *Logger {
	return f.Logger(TypeNameOf(v))
}

// LoggerFor returns the logger named after the type T.
func LoggerFor[T any](f *Facility) *Logger {
	return f.Logger(TypeName[T]())
}

// SetMinLevel changes the default minimum level for loggers without an override.
func (f *Facility) SetMinLevel(l Level) {
	f.minLevel.Store(int64(l))
	if ls, ok := f.adapter.(adapterLevelSetter); ok {
		ls.SetMinLevel(f.lowestLevel())
	}
}

// SetLevel overrides the minimum level for a single logger name.
func (f *Facility) SetLevel(name string, l Level) {
	f.levelsMu.Lock()
	cur := f.levels.Load().(map[string]Level)
	next := make(map[string]Level, len(cur)+1)
	for k, v := range cur {
		next[k] = v
	}
	next[name] = l
	f.levels.Store(next)
	f.levelsMu.Unlock()

	if ls, ok := f.adapter.(adapterLevelSetter); ok {
		ls.SetMinLevel(f.lowestLevel())
	}
}

// Enabled reports whether an entry at level would be emitted through the named logger.
func (f *Facility) Enabled(name string, level Level) bool {
	return level >= f.levelFor(name)
}

func (f *Facility) levelFor(name string) Level {
	if l, ok := f.levels.Load().(map[string]Level)[name]; ok {
		return l
	}
	return Level(f.minLevel.Load())
}

// lowestLevel is the most verbose level any logger may emit at; backends
// filtering on their own must let at least this much through.
func (f *Facility) lowestLevel() Level {
	lowest := Level(f.minLevel.Load())
	for _, l := range f.levels.Load().(map[string]Level) {
		if l < lowest {
			lowest = l
		}
	}
	return lowest
}

// Subscribe registers o to receive every entry emitted through this facility
// after level filtering. The returned function removes the subscription; it is
// safe to call more than once.
func (f *Facility) Subscribe(o Observer) (unsubscribe func()) {
	s := &subscription{o: o}

	f.obsMu.Lock()
	cur := f.subscriptions()
	next := make([]*subscription, len(cur), len(cur)+1)
	copy(next, cur)
	f.observers.Store(append(next, s))
	f.obsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { f.unsubscribe(s) })
	}
}

func (f *Facility) unsubscribe(s *subscription) {
	f.obsMu.Lock()
	defer f.obsMu.Unlock()
	cur := f.subscriptions()
	next := make([]*subscription, 0, len(cur))
	for _, c := range cur {
		if c != s {
			next = append(next, c)
		}
	}
	f.observers.Store(next)
}

func (f *Facility) subscriptions() []*subscription {
	v, _ := f.observers.Load().([]*subscription)
	return v
}

func (f *Facility) now() time.Time {
	if f.clock != nil {
		return f.clock.Now()
	}
	return xclock.Now()
}

// Facade: global access (Singleton + Facade).
var global atomic.Pointer[Facility]

// SetGlobal sets the process-wide Facility (Singleton setter).
func SetGlobal(f *Facility) { global.Store(f) }

// Global returns the process-wide Facility; panic if unset to surface misconfig early.
func Global() *Facility {
	f := global.Load()
	if f == nil {
		panic("xlog: global facility not set. Build one and call xlog.SetGlobal(...)")
	}
	return f
}

// L returns the root logger of the global Facility.
func L() *Logger { return Global().Logger("") }
