package codec

import (
	"runtime"
	"time"
)

// LargeInputThreshold is the input size above which codecs yield to the
// scheduler before processing.
const LargeInputThreshold = 256 * 1024

// Scheduler is the cooperative run-loop collaborator. YieldIfLarge hands
// control back to the host when n exceeds the large-input threshold; After
// runs fn once the delay elapses. Implementations must not lose or reorder
// state across a yield.
type Scheduler interface {
	YieldIfLarge(n int)
	After(d time.Duration, fn func())
}

// GoScheduler yields through the Go runtime and schedules timers with
// time.AfterFunc. This is the production implementation.
type GoScheduler struct{}

func (GoScheduler) YieldIfLarge(n int) {
	if n > LargeInputThreshold {
		runtime.Gosched()
	}
}

func (GoScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// NopScheduler never yields and runs timers inline after a blocking sleep.
// Useful in tests and in hosts that do not multiplex logical tasks.
type NopScheduler struct{}

func (NopScheduler) YieldIfLarge(int) {}

func (NopScheduler) After(d time.Duration, fn func()) {
	time.Sleep(d)
	fn()
}
