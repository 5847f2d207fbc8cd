package xlog

import (
	"fmt"
	"sync"
	"time"
)

// Event is a fluent builder (Builder pattern) for a single log entry.
// API: L().Info().Str("from", ...).Dur("to", dur).Err(err).Msg("state changed")
//
// An Event must be terminated exactly once with Msg, Msgf, MsgFunc or Send;
// it returns to a pool afterwards and must not be touched again.
type Event struct {
	l      *Logger
	level  Level
	cause  error
	fields []Field
}

var eventPool = sync.Pool{
	New: func() any { return &Event{fields: make([]Field, 0, 8)} },
}

func getEvent(l *Logger, level Level) *Event {
	ev := eventPool.Get().(*Event)
	ev.l = l
	ev.level = level
	ev.cause = nil
	ev.fields = ev.fields[:0]
	return ev
}

func (e *Event) putBack() {
	// allow GC of large backing arrays by capping
	if cap(e.fields) > 128 {
		e.fields = make([]Field, 0, 8)
	}
	e.l = nil
	e.level = 0
	e.cause = nil
	eventPool.Put(e)
}

// Field builders (zerolog-style)

func (e *Event) Str(k, v string) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindString, Str: v})
	return e
}

func (e *Event) Int(k string, v int) *Event { return e.Int64(k, int64(v)) }

func (e *Event) Int64(k string, v int64) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindInt64, Int64: v})
	return e
}

func (e *Event) Uint64(k string, v uint64) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindUint64, Uint64: v})
	return e
}

func (e *Event) Float64(k string, v float64) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindFloat64, Float64: v})
	return e
}

func (e *Event) Bool(k string, v bool) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindBool, Bool: v})
	return e
}

func (e *Event) Dur(k string, v time.Duration) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindDuration, Dur: v})
	return e
}

func (e *Event) Time(k string, v time.Time) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindTime, Time: v})
	return e
}

func (e *Event) Bytes(k string, v []byte) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindBytes, Bytes: v})
	return e
}

// Err records err as the cause of the entry. A nil err is ignored.
func (e *Event) Err(err error) *Event {
	if err == nil {
		return e
	}
	e.cause = err
	return e
}

func (e *Event) Any(k string, v any) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindAny, Any: v})
	return e
}

// Msg terminates the builder and emits the event.
func (e *Event) Msg(msg string) {
	e.send(message{value: msg})
}

// Msgf is Msg with fmt formatting. Formatting happens only if the level is enabled.
func (e *Event) Msgf(format string, args ...any) {
	e.send(message{producer: func() any { return fmt.Sprintf(format, args...) }})
}

// MsgFunc emits a message produced on demand. fn runs at most once, and only
// if the level is enabled.
func (e *Event) MsgFunc(fn func() any) {
	e.send(message{producer: fn})
}

// Send emits v, which need not be a string, as the message.
func (e *Event) Send(v any) {
	e.send(message{value: v})
}

func (e *Event) send(m message) {
	e.l.emit(e.level, m, e.fields, e.cause)
	e.putBack()
}
