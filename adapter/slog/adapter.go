package slogadapter

import (
	"context"
	"log/slog"

	"github.com/trickstertwo/loglist/xlog"
)

// SlogAdapter adapts xlog to the Go slog API (Adapter Strategy).
// It builds slog.Attrs directly for low overhead and uses LogAttrs.
type SlogAdapter struct {
	l     *slog.Logger
	lv    *slog.LevelVar // optional, enables SetMinLevel
	tsKey string
}

func New(l *slog.Logger) *SlogAdapter {
	return NewWithTimestampKey(l, nil, "ts")
}

// NewWithTimestampKey wires an optional LevelVar for SetMinLevel and
// overrides the timestamp attribute key (default "ts").
func NewWithTimestampKey(l *slog.Logger, lv *slog.LevelVar, tsKey string) *SlogAdapter {
	if l == nil {
		l = slog.Default()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &SlogAdapter{l: l, lv: lv, tsKey: tsKey}
}

// With binds fields onto a child slog.Logger.
func (a *SlogAdapter) With(fs []xlog.Field) xlog.Adapter {
	child := *a
	if len(fs) > 0 {
		args := make([]any, len(fs))
		for i := range fs {
			args[i] = toAttr(fs[i])
		}
		child.l = a.l.With(args...)
	}
	return &child
}

func (a *SlogAdapter) Log(e *xlog.Entry) {
	attrs := make([]slog.Attr, 0, len(e.Fields)+3)

	// Single authoritative timestamp provided by the facility
	attrs = append(attrs, slog.Time(a.tsKey, e.At))
	if e.Name != "" {
		attrs = append(attrs, slog.String("logger", e.Name))
	}
	if e.Cause != nil {
		attrs = append(attrs, slog.String("error", e.Cause.Error()))
	}
	for i := range e.Fields {
		attrs = append(attrs, toAttr(e.Fields[i]))
	}

	// Use LogAttrs for minimal allocations
	a.l.LogAttrs(context.Background(), slog.Level(e.Level), e.MessageString(), attrs...)
}

// SetMinLevel updates the LevelVar when one was supplied.
func (a *SlogAdapter) SetMinLevel(l xlog.Level) {
	if a.lv != nil {
		a.lv.Set(slog.Level(l))
	}
}

func toAttr(f xlog.Field) slog.Attr {
	switch f.Kind {
	case xlog.KindString:
		return slog.String(f.K, f.Str)
	case xlog.KindInt64:
		return slog.Int64(f.K, f.Int64)
	case xlog.KindUint64:
		return slog.Uint64(f.K, f.Uint64)
	case xlog.KindFloat64:
		return slog.Float64(f.K, f.Float64)
	case xlog.KindBool:
		return slog.Bool(f.K, f.Bool)
	case xlog.KindDuration:
		return slog.Duration(f.K, f.Dur)
	case xlog.KindTime:
		return slog.Time(f.K, f.Time)
	default:
		return slog.Any(f.K, f.Value())
	}
}

