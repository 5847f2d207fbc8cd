package xlog

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/trickstertwo/xclock"
)

// stubAdapter is a minimal Adapter for tests. It records what it was asked to log.
type stubAdapter struct {
	mu    *sync.Mutex
	bound []Field
	logs  *[]Entry
}

func newStubAdapter() *stubAdapter {
	return &stubAdapter{mu: &sync.Mutex{}, logs: &[]Entry{}}
}

func (a *stubAdapter) With(fs []Field) Adapter {
	child := *a
	child.bound = append(copyFields(nil, a.bound), fs...)
	return &child
}

func (a *stubAdapter) Log(e *Entry) {
	a.mu.Lock()
	defer a.mu.Unlock()

	rec := *e
	rec.Fields = append(copyFields(nil, a.bound), e.Fields...)
	*a.logs = append(*a.logs, rec)
}

func (a *stubAdapter) entries() []Entry {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Entry(nil), *a.logs...)
}

func newTestFacility(t *testing.T, a Adapter, min Level) *Facility {
	t.Helper()
	f, err := NewBuilder().WithAdapter(a).WithMinLevel(min).Build()
	if err != nil {
		t.Fatalf("build facility: %v", err)
	}
	return f
}

func TestGlobalAndFacade(t *testing.T) {
	// Freeze time for determinism
	old := xclock.Default()
	defer xclock.SetDefault(old)
	ft := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	xclock.SetDefault(xclock.NewFrozen(ft))

	adapter := newStubAdapter()
	SetGlobal(newTestFacility(t, adapter, LevelDebug))

	Info().Str("from", "old").Dur("to", time.Second).Int("count", 2).Msg("state changed")

	logs := adapter.entries()
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}
	entry := logs[0]
	if entry.Level != LevelInfo {
		t.Fatalf("level mismatch: got %v", entry.Level)
	}
	if entry.Message != "state changed" {
		t.Fatalf("msg mismatch: %v", entry.Message)
	}
	if entry.Name != "" {
		t.Fatalf("root logger name should be empty, got %q", entry.Name)
	}
	if !entry.At.Equal(ft) {
		t.Fatalf("timestamp mismatch: got %s want %s", entry.At, ft)
	}
	assertHasStr(t, entry.Fields, "from", "old")
	assertHasDur(t, entry.Fields, "to", time.Second)
	assertHasInt64(t, entry.Fields, "count", 2)
}

func TestMinLevelFilter(t *testing.T) {
	t.Parallel()

	adapter := newStubAdapter()
	f := newTestFacility(t, adapter, LevelWarn)

	f.Logger("svc").Info().Msg("not emitted")
	f.Logger("svc").Warn().Msg("emitted")

	logs := adapter.entries()
	if got := len(logs); got != 1 {
		t.Fatalf("expected 1 log, got %d", got)
	}
	if logs[0].Level != LevelWarn {
		t.Fatalf("unexpected level %v", logs[0].Level)
	}
}

func TestPerNameLevel(t *testing.T) {
	t.Parallel()

	adapter := newStubAdapter()
	f, err := NewBuilder().
		WithAdapter(adapter).
		WithMinLevel(LevelInfo).
		WithLevel("chatty", LevelTrace).
		Build()
	if err != nil {
		t.Fatalf("build facility: %v", err)
	}

	f.Logger("chatty").Trace().Msg("kept")
	f.Logger("quiet").Debug().Msg("dropped")
	f.SetLevel("quiet", LevelDebug)
	f.Logger("quiet").Debug().Msg("kept too")

	logs := adapter.entries()
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(logs))
	}
	if logs[0].Name != "chatty" || logs[1].Name != "quiet" {
		t.Fatalf("unexpected names: %q, %q", logs[0].Name, logs[1].Name)
	}
}

func TestWithAndObserverMerge(t *testing.T) {
	// Freeze time
	old := xclock.Default()
	defer xclock.SetDefault(old)
	ft := time.Date(2030, 2, 2, 3, 4, 5, 0, time.UTC)
	xclock.SetDefault(xclock.NewFrozen(ft))

	adapter := newStubAdapter()
	var got []Entry
	obs := ObserverFunc(func(e Entry) { got = append(got, e) })

	f, err := NewBuilder().
		WithAdapter(adapter).
		WithMinLevel(LevelInfo).
		AddObserver(obs).
		Build()
	if err != nil {
		t.Fatalf("build facility: %v", err)
	}

	child := f.Logger("api").With(Field{K: "request_id", Kind: KindString, Str: "r-1"})
	child.Info().Str("path", "/api").Int("status", 200).Msg("done")

	// Check observer got merged fields and timestamp
	if len(got) != 1 {
		t.Fatalf("expected 1 observer entry, got %d", len(got))
	}
	e := got[0]
	if !e.At.Equal(ft) {
		t.Fatalf("observer ts mismatch: got %s want %s", e.At, ft)
	}
	if e.Message != "done" || e.Level != LevelInfo || e.Name != "api" {
		t.Fatalf("observer basic fields mismatch: %+v", e)
	}
	assertHasStr(t, e.Fields, "request_id", "r-1")
	assertHasStr(t, e.Fields, "path", "/api")
	assertHasInt64(t, e.Fields, "status", 200)
}

func TestSubscribeUnsubscribe(t *testing.T) {
	t.Parallel()

	f := newTestFacility(t, Discard, LevelTrace)
	var got []Entry
	unsubscribe := f.Subscribe(ObserverFunc(func(e Entry) { got = append(got, e) }))

	f.Logger("a").Info().Msg("one")
	unsubscribe()
	unsubscribe()
	f.Logger("a").Info().Msg("two")

	if len(got) != 1 || got[0].Message != "one" {
		t.Fatalf("expected only the first entry, got %+v", got)
	}
}

func TestLazyMessage(t *testing.T) {
	t.Parallel()

	f := newTestFacility(t, Discard, LevelInfo)
	var got []Entry
	f.Subscribe(ObserverFunc(func(e Entry) { got = append(got, e) }))

	calls := 0
	produce := func() any {
		calls++
		return "expensive"
	}
	f.Logger("lazy").Debug().MsgFunc(produce)
	if calls != 0 {
		t.Fatalf("producer ran for a disabled level")
	}
	f.Logger("lazy").Info().MsgFunc(produce)
	if calls != 1 {
		t.Fatalf("producer ran %d times, want 1", calls)
	}
	f.Logger("lazy").Info().Msgf("n=%d", 3)

	if len(got) != 2 || got[0].Message != "expensive" || got[1].Message != "n=3" {
		t.Fatalf("unexpected entries %+v", got)
	}
}

func TestCauseAndSend(t *testing.T) {
	t.Parallel()

	f := newTestFacility(t, Discard, LevelTrace)
	var got []Entry
	f.Subscribe(ObserverFunc(func(e Entry) { got = append(got, e) }))

	boom := errors.New("boom")
	f.Logger("x").Error().Err(boom).Msg("failed")
	f.Logger("x").Warn().Send(nil)
	f.Logger("x").Warn().Send(42)

	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got[0].Cause != boom {
		t.Fatalf("cause not recorded: %v", got[0].Cause)
	}
	if got[1].Message != nil || got[1].MessageString() != "null" {
		t.Fatalf("nil message should render as null, got %q", got[1].MessageString())
	}
	if got[2].Message != 42 || got[2].MessageString() != "42" {
		t.Fatalf("unexpected non-string message %v", got[2].Message)
	}
}

func TestEntryString(t *testing.T) {
	t.Parallel()

	e := Entry{
		At:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Name:    "db",
		Level:   LevelWarn,
		Message: "slow query",
		Cause:   errors.New("timeout"),
		Fields:  []Field{Int64("ms", 1200)},
	}
	want := "2025-06-01T12:00:00Z WARN db: slow query ms=1200 (cause: timeout)"
	if got := e.String(); got != want {
		t.Fatalf("String mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestBuildWithoutAdapter(t *testing.T) {
	t.Parallel()

	if _, err := NewBuilder().Build(); err == nil {
		t.Fatal("expected error without adapter")
	}
}

type typedSource struct{}

func TestLoggerForType(t *testing.T) {
	t.Parallel()

	f := newTestFacility(t, Discard, LevelInfo)
	want := "github.com/trickstertwo/loglist/xlog.typedSource"
	if got := LoggerFor[typedSource](f).Name(); got != want {
		t.Fatalf("LoggerFor name: got %q want %q", got, want)
	}
	if got := f.LoggerOf(&typedSource{}).Name(); got != want {
		t.Fatalf("LoggerOf name: got %q want %q", got, want)
	}
	if f.Logger(want) != LoggerFor[*typedSource](f) {
		t.Fatal("loggers should be cached per name")
	}
}

func assertHasStr(t *testing.T, fs []Field, k, v string) {
	t.Helper()
	for _, f := range fs {
		if f.K == k && f.Kind == KindString && f.Str == v {
			return
		}
	}
	t.Fatalf("missing string field %q=%q in %+v", k, v, fs)
}

func assertHasInt64(t *testing.T, fs []Field, k string, v int64) {
	t.Helper()
	for _, f := range fs {
		if f.K == k && f.Kind == KindInt64 && f.Int64 == v {
			return
		}
	}
	t.Fatalf("missing int64 field %q=%d in %+v", k, v, fs)
}

func assertHasDur(t *testing.T, fs []Field, k string, v time.Duration) {
	t.Helper()
	for _, f := range fs {
		if f.K == k && f.Kind == KindDuration && f.Dur == v {
			return
		}
	}
	t.Fatalf("missing duration field %q=%s in %+v", k, v, fs)
}
