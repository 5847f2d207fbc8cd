package loglist_test

import (
	"fmt"
	"regexp"
	"time"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/loglist"
	"github.com/trickstertwo/loglist/xlog"
)

func ExampleNew() {
	f, _ := xlog.NewBuilder().
		WithAdapter(xlog.Discard).
		WithMinLevel(xlog.LevelDebug).
		WithClock(xclock.NewFrozen(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))).
		Build()

	list := loglist.New(f)
	defer list.Close()

	f.Logger("payments").Info().Int("amount", 10).Msg("charged")
	f.Logger("payments").Debug().Msgf("balance %d", 90)
	f.Logger("orders").Warn().Msg("retrying")

	fmt.Println(loglist.Exists(list, xlog.LevelInfo, loglist.Value("charged")))
	fmt.Println(loglist.Exists(loglist.SubList(list, "orders"), xlog.LevelDebug, loglist.Matching(regexp.MustCompile(`\d+`))))
	fmt.Println(loglist.Lines(list))
	// Output:
	// true
	// false
	// log lines:
	// 2025-01-01T00:00:00Z INFO payments: charged amount=10
	// 2025-01-01T00:00:00Z DEBUG payments: balance 90
	// 2025-01-01T00:00:00Z WARN orders: retrying
}

func ExampleCheck() {
	f, _ := xlog.NewBuilder().
		WithAdapter(xlog.Discard).
		WithClock(xclock.NewFrozen(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))).
		Build()

	list := loglist.New(f, loglist.WithName("worker"))
	defer list.Close()

	f.Logger("worker").Error().Err(fmt.Errorf("disk full")).Msg("flush failed")
	f.Logger("other").Error().Msg("ignored")

	fmt.Println(loglist.Check(list, xlog.LevelError, loglist.Containing("timeout")))
	// Output:
	// LogList does not contain ERROR containing timeout
	// log lines:
	// 2025-01-01T00:00:00Z ERROR worker: flush failed (cause: disk full)
}
