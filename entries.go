package loglist

import (
	"iter"
	"slices"
	"strings"

	"github.com/trickstertwo/loglist/xlog"
)

// Source is any ordered collection of entries assertions can run over.
type Source interface {
	Entries() Entries
}

// Entries is a read-only ordered view of captured entries.
type Entries []xlog.Entry

// Entries implements Source.
func (es Entries) Entries() Entries { return es }

// All iterates over the entries in order.
func (es Entries) All() iter.Seq[xlog.Entry] {
	return slices.Values(es)
}

func (es Entries) String() string { return Lines(es) }

// SubList returns the entries of src emitted by the logger called name,
// in their original order. No match gives an empty, non-nil view.
func SubList(src Source, name string) Entries {
	out := Entries{}
	for _, e := range src.Entries() {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// SubListFor is SubList for the logger named after T.
func SubListFor[T any](src Source) Entries {
	return SubList(src, xlog.TypeName[T]())
}

// SubListOf is SubList for the logger named after the type of v.
func SubListOf(src Source, v any) Entries {
	return SubList(src, xlog.TypeNameOf(v))
}

const linesHeader = "log lines:"

// Lines renders src for failure output: a "log lines:" header followed by one
// line per entry.
func Lines(src Source) string {
	es := src.Entries()
	var b strings.Builder
	b.WriteString(linesHeader)
	for _, e := range es {
		b.WriteByte('\n')
		b.WriteString(e.String())
	}
	return b.String()
}
