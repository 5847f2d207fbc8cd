// Package loglist captures log entries emitted through an xlog.Facility
// during a test and asserts on them.
//
//	func TestCharge(t *testing.T) {
//		logs := loglist.Capture(t, facility)
//		svc.Charge(ctx, 10)
//		loglist.ShouldHaveInfoContaining(t, logs, "charged")
//		loglist.ShouldHaveError(t, loglist.SubList(logs, "payments"), func(e xlog.Entry) bool {
//			return e.Cause != nil
//		})
//	}
//
// Every severity has four query forms on a single entry (IsInfo,
// IsInfoValue, IsInfoContaining, IsInfoMatching) and four matching
// assertions over a collection (ShouldHaveInfo, ShouldHaveInfoValue,
// ShouldHaveInfoContaining, ShouldHaveInfoMatching). A failed assertion
// reports every captured line.
package loglist
