package xlog

import (
	"strings"
	"time"
)

// Observer pattern

// Entry is a read-only snapshot of an emitted log event. It is sent to
// Observers by value and is never mutated after emission.
type Entry struct {
	At      time.Time
	Name    string // logger name the entry was emitted through
	Level   Level
	Message any   // realized message; may be nil
	Cause   error // optional
	Fields  []Field
}

// MessageString realizes the message as display text; nil renders as "null".
func (e Entry) MessageString() string {
	return Display(e.Message)
}

// String is the default one-line rendering of an entry.
func (e Entry) String() string {
	var b strings.Builder
	b.Grow(64)
	b.WriteString(e.At.UTC().Format(time.RFC3339Nano))
	b.WriteByte(' ')
	b.WriteString(e.Level.String())
	b.WriteByte(' ')
	b.WriteString(e.Name)
	b.WriteString(": ")
	b.WriteString(e.MessageString())
	for i := range e.Fields {
		b.WriteByte(' ')
		b.WriteString(e.Fields[i].String())
	}
	if e.Cause != nil {
		b.WriteString(" (cause: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}
	return b.String()
}

// Observer is notified synchronously, in emission order, for each emitted entry.
// Implementations MUST be concurrency-safe.
type Observer interface {
	OnLog(entry Entry)
}

// ObserverFunc adapter.
type ObserverFunc func(Entry)

func (f ObserverFunc) OnLog(e Entry) { f(e) }
