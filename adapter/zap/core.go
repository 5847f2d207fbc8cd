package zapadapter

import (
	"slices"

	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/loglist/xlog"
)

// Core is a zapcore.Core that re-emits zap entries through an xlog.Facility,
// so code logging straight to zap reaches the facility's subscribers. The zap
// logger name becomes the entry name; an "error" field becomes the cause.
//
//	zl := zap.New(zapadapter.NewCore(facility)).Named("payments")
type Core struct {
	f      *xlog.Facility
	fields []zapcore.Field
}

// NewCore returns a Core emitting into f.
func NewCore(f *xlog.Facility) *Core {
	return &Core{f: f}
}

// Enabled defers to Check, where the logger name is known.
func (c *Core) Enabled(zapcore.Level) bool { return true }

func (c *Core) With(fs []zapcore.Field) zapcore.Core {
	child := *c
	child.fields = append(slices.Clip(c.fields), fs...)
	return &child
}

func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.f.Enabled(ent.LoggerName, fromZapLevel(ent.Level)) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *Core) Write(ent zapcore.Entry, fs []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for i := range c.fields {
		c.fields[i].AddTo(enc)
	}

	var cause error
	for i := range fs {
		if fs[i].Type == zapcore.ErrorType && fs[i].Key == "error" {
			if err, ok := fs[i].Interface.(error); ok {
				cause = err
				continue
			}
		}
		fs[i].AddTo(enc)
	}

	ev := c.f.Logger(ent.LoggerName).At(fromZapLevel(ent.Level)).Err(cause)
	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		ev.Any(k, enc.Fields[k])
	}
	ev.Msg(ent.Message)
	return nil
}

func (c *Core) Sync() error { return nil }

func fromZapLevel(l zapcore.Level) xlog.Level {
	switch {
	case l < zapcore.InfoLevel:
		return xlog.LevelDebug
	case l == zapcore.InfoLevel:
		return xlog.LevelInfo
	case l == zapcore.WarnLevel:
		return xlog.LevelWarn
	default:
		return xlog.LevelError
	}
}
