package loglist

import (
	"regexp"

	"github.com/stretchr/testify/require"

	"github.com/trickstertwo/loglist/xlog"
)

// AssertionError reports that no entry matched. It is the only error the
// package produces.
type AssertionError struct {
	Level xlog.Level
	Want  string // what was looked for, e.g. "INFO containing ready"
	Lines string // Lines() of the searched collection
}

func (e *AssertionError) Error() string {
	return "LogList does not contain " + e.Want + "\n" + e.Lines
}

// Exists reports whether any entry of src has the given level and satisfies p.
func Exists(src Source, level xlog.Level, p Predicate) bool {
	for _, e := range src.Entries() {
		if Is(e, level, p) {
			return true
		}
	}
	return false
}

// Check is the error-returning form of ShouldHave: nil when an entry matches,
// an *AssertionError otherwise.
func Check(src Source, level xlog.Level, p Predicate) error {
	es := src.Entries()
	if Exists(es, level, p) {
		return nil
	}
	return &AssertionError{
		Level: level,
		Want:  p.describe(level),
		Lines: Lines(es),
	}
}

type tHelper interface {
	Helper()
}

// ShouldHave fails the test now unless src holds an entry at level for which
// p holds. The failure message lists every entry of src.
func ShouldHave(t require.TestingT, src Source, level xlog.Level, p Predicate) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if err := Check(src, level, p); err != nil {
		require.Fail(t, err.Error())
	}
}

func ShouldHaveTrace(t require.TestingT, src Source, fn func(xlog.Entry) bool) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	ShouldHave(t, src, xlog.LevelTrace, Test(fn))
}

func ShouldHaveTraceValue(t require.TestingT, src Source, v any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	ShouldHave(t, src, xlog.LevelTrace, Value(v))
}

func ShouldHaveTraceContaining(t require.TestingT, src Source, text string) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	ShouldHave(t, src, xlog.LevelTrace, Containing(text))
}

func ShouldHaveTraceMatching(t require.TestingT, src Source, re *regexp.Regexp) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	ShouldHave(t, src, xlog.LevelTrace, Matching(re))
}

func ShouldHaveDebug(t require.TestingT, src Source, fn func(xlog.Entry) bool) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	ShouldHave(t, src, xlog.LevelDebug, Test(fn))
}

func ShouldHaveDebugValue(t require.TestingT, src Source, v any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	ShouldHave(t, src, xlog.LevelDebug, Value(v))
}

func ShouldHaveDebugContaining(t require.TestingT, src Source, text string) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	ShouldHave(t, src, xlog.LevelDebug, Containing(text))
}

func ShouldHaveDebugMatching(t require.TestingT, src Source, re *regexp.Regexp) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	ShouldHave(t, src, xlog.LevelDebug, Matching(re))
}

func ShouldHaveInfo(t require.TestingT, src Source, fn func(xlog.Entry) bool) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	ShouldHave(t, src, xlog.LevelInfo, Test(fn))
}

func ShouldHaveInfoValue(t require.TestingT, src Source, v any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	ShouldHave(t, src, xlog.LevelInfo, Value(v))
}

func ShouldHaveInfoContaining(t require.TestingT, src Source, text string) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	ShouldHave(t, src, xlog.LevelInfo, Containing(text))
}

func ShouldHaveInfoMatching(t require.TestingT, src Source, re *regexp.Regexp) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	ShouldHave(t, src, xlog.LevelInfo, Matching(re))
}

func ShouldHaveWarn(t require.TestingT, src Source, fn func(xlog.Entry) bool) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	ShouldHave(t, src, xlog.LevelWarn, Test(fn))
}

func ShouldHaveWarnValue(t require.TestingT, src Source, v any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	ShouldHave(t, src, xlog.LevelWarn, Value(v))
}

func ShouldHaveWarnContaining(t require.TestingT, src Source, text string) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	ShouldHave(t, src, xlog.LevelWarn, Containing(text))
}

func ShouldHaveWarnMatching(t require.TestingT, src Source, re *regexp.Regexp) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	ShouldHave(t, src, xlog.LevelWarn, Matching(re))
}

func ShouldHaveError(t require.TestingT, src Source, fn func(xlog.Entry) bool) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	ShouldHave(t, src, xlog.LevelError, Test(fn))
}

func ShouldHaveErrorValue(t require.TestingT, src Source, v any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	ShouldHave(t, src, xlog.LevelError, Value(v))
}

func ShouldHaveErrorContaining(t require.TestingT, src Source, text string) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	ShouldHave(t, src, xlog.LevelError, Containing(text))
}

func ShouldHaveErrorMatching(t require.TestingT, src Source, re *regexp.Regexp) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	ShouldHave(t, src, xlog.LevelError, Matching(re))
}
