package loglist

import (
	"iter"
	"sync"
	"testing"

	"github.com/trickstertwo/loglist/xlog"
)

// Subscriber is the part of a logging facility a LogList needs.
// *xlog.Facility implements it.
type Subscriber interface {
	Subscribe(o xlog.Observer) (unsubscribe func())
}

// LogList accumulates entries delivered by a Subscriber, in delivery order.
// It is safe for concurrent delivery; reads copy.
type LogList struct {
	name string // "" accepts every source

	mu      sync.Mutex
	entries []xlog.Entry

	unsubscribe func()
	closeOnce   sync.Once
}

type options struct {
	name string
}

// Option configures a LogList at construction.
type Option func(*options)

// WithName keeps only entries whose source name equals name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// ForType keeps only entries from the logger named after T.
func ForType[T any]() Option {
	name := xlog.TypeName[T]()
	return func(o *options) { o.name = name }
}

// ForValue keeps only entries from the logger named after the type of v.
func ForValue(v any) Option {
	name := xlog.TypeNameOf(v)
	return func(o *options) { o.name = name }
}

// New creates a LogList and subscribes it to s immediately. Callers must
// Close it when done; Capture does that through t.Cleanup.
func New(s Subscriber, opts ...Option) *LogList {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	l := &LogList{name: o.name}
	l.unsubscribe = s.Subscribe(l)
	return l
}

// Capture is New with Close registered on t.Cleanup, so the subscription
// ends however the test exits.
func Capture(t testing.TB, s Subscriber, opts ...Option) *LogList {
	t.Helper()
	l := New(s, opts...)
	t.Cleanup(func() { _ = l.Close() })
	return l
}

// OnLog implements xlog.Observer.
func (l *LogList) OnLog(e xlog.Entry) {
	if l.name != "" && e.Name != l.name {
		return
	}
	l.mu.Lock()
	l.entries = append(l.entries, e)
	l.mu.Unlock()
}

// Close unsubscribes from the facility. Entries already captured stay
// readable. It is safe to call more than once and always returns nil.
func (l *LogList) Close() error {
	l.closeOnce.Do(func() {
		if l.unsubscribe != nil {
			l.unsubscribe()
		}
	})
	return nil
}

// Name returns the source-name filter, "" when there is none.
func (l *LogList) Name() string { return l.name }

// Entries returns a copy of the captured entries in insertion order.
func (l *LogList) Entries() Entries {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(Entries, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of captured entries.
func (l *LogList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// All iterates over a snapshot of the captured entries.
func (l *LogList) All() iter.Seq[xlog.Entry] {
	return l.Entries().All()
}

func (l *LogList) String() string { return Lines(l) }
