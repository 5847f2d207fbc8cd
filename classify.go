package loglist

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/trickstertwo/loglist/xlog"
)

type predicateKind uint8

const (
	kindTest predicateKind = iota + 1
	kindValue
	kindContaining
	kindMatching
)

// Predicate qualifies the message of an entry. Build one with Test, Value,
// Containing or Matching; the zero Predicate never holds.
type Predicate struct {
	kind  predicateKind
	test  func(xlog.Entry) bool
	value any
	text  string
	re    *regexp.Regexp
}

// Test holds when fn returns true for the entry.
func Test(fn func(xlog.Entry) bool) Predicate {
	return Predicate{kind: kindTest, test: fn}
}

// Value holds when the message deep-equals v. A nil v matches a nil message.
func Value(v any) Predicate {
	return Predicate{kind: kindValue, value: v}
}

// Containing holds when the message text contains text (case-sensitive).
func Containing(text string) Predicate {
	return Predicate{kind: kindContaining, text: text}
}

// Matching holds when re matches anywhere in the message text.
func Matching(re *regexp.Regexp) Predicate {
	return Predicate{kind: kindMatching, re: re}
}

func (p Predicate) holds(e xlog.Entry) bool {
	switch p.kind {
	case kindTest:
		return p.test != nil && p.test(e)
	case kindValue:
		return reflect.DeepEqual(e.Message, p.value)
	case kindContaining:
		return strings.Contains(e.MessageString(), p.text)
	case kindMatching:
		return p.re != nil && p.re.MatchString(e.MessageString())
	default:
		return false
	}
}

// describe names what was looked for, for failure messages.
func (p Predicate) describe(level xlog.Level) string {
	switch p.kind {
	case kindTest:
		return "matching " + level.String()
	case kindValue:
		return level.String() + " " + xlog.Display(p.value)
	case kindContaining:
		return level.String() + " containing " + p.text
	case kindMatching:
		if p.re == nil {
			return level.String() + " <nil pattern>"
		}
		return level.String() + " " + p.re.String()
	default:
		return level.String() + " <empty predicate>"
	}
}

// Is reports whether e has exactly the given level and p holds for it.
func Is(e xlog.Entry, level xlog.Level, p Predicate) bool {
	return e.Level == level && p.holds(e)
}

func IsTrace(e xlog.Entry, fn func(xlog.Entry) bool) bool {
	return Is(e, xlog.LevelTrace, Test(fn))
}
func IsTraceValue(e xlog.Entry, v any) bool {
	return Is(e, xlog.LevelTrace, Value(v))
}
func IsTraceContaining(e xlog.Entry, text string) bool {
	return Is(e, xlog.LevelTrace, Containing(text))
}
func IsTraceMatching(e xlog.Entry, re *regexp.Regexp) bool {
	return Is(e, xlog.LevelTrace, Matching(re))
}

func IsDebug(e xlog.Entry, fn func(xlog.Entry) bool) bool {
	return Is(e, xlog.LevelDebug, Test(fn))
}
func IsDebugValue(e xlog.Entry, v any) bool {
	return Is(e, xlog.LevelDebug, Value(v))
}
func IsDebugContaining(e xlog.Entry, text string) bool {
	return Is(e, xlog.LevelDebug, Containing(text))
}
func IsDebugMatching(e xlog.Entry, re *regexp.Regexp) bool {
	return Is(e, xlog.LevelDebug, Matching(re))
}

func IsInfo(e xlog.Entry, fn func(xlog.Entry) bool) bool {
	return Is(e, xlog.LevelInfo, Test(fn))
}
func IsInfoValue(e xlog.Entry, v any) bool {
	return Is(e, xlog.LevelInfo, Value(v))
}
func IsInfoContaining(e xlog.Entry, text string) bool {
	return Is(e, xlog.LevelInfo, Containing(text))
}
func IsInfoMatching(e xlog.Entry, re *regexp.Regexp) bool {
	return Is(e, xlog.LevelInfo, Matching(re))
}

func IsWarn(e xlog.Entry, fn func(xlog.Entry) bool) bool {
	return Is(e, xlog.LevelWarn, Test(fn))
}
func IsWarnValue(e xlog.Entry, v any) bool {
	return Is(e, xlog.LevelWarn, Value(v))
}
func IsWarnContaining(e xlog.Entry, text string) bool {
	return Is(e, xlog.LevelWarn, Containing(text))
}
func IsWarnMatching(e xlog.Entry, re *regexp.Regexp) bool {
	return Is(e, xlog.LevelWarn, Matching(re))
}

func IsError(e xlog.Entry, fn func(xlog.Entry) bool) bool {
	return Is(e, xlog.LevelError, Test(fn))
}
func IsErrorValue(e xlog.Entry, v any) bool {
	return Is(e, xlog.LevelError, Value(v))
}
func IsErrorContaining(e xlog.Entry, text string) bool {
	return Is(e, xlog.LevelError, Containing(text))
}
func IsErrorMatching(e xlog.Entry, re *regexp.Regexp) bool {
	return Is(e, xlog.LevelError, Matching(re))
}
