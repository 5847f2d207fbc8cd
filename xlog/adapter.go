package xlog

// Adapter is the logging backend Strategy (e.g., zap or slog wrapper).
// Log receives the entry with the single authoritative timestamp from the
// Facility. e.Fields carries only the per-event fields; fields bound through
// With are the adapter's own responsibility. Adapters must not retain e.
type Adapter interface {
	Log(e *Entry)
	With(fields []Field) Adapter // return a child adapter with bound fields (do not mutate receiver)
}

// Discard is an Adapter that drops everything. Useful when only observers matter.
var Discard Adapter = discard{}

type discard struct{}

func (discard) Log(*Entry)             {}
func (d discard) With([]Field) Adapter { return d }
