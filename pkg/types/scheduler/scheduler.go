package scheduler

import "time"

type Scheduler interface {
	Start() error
	Stop()
}

const (
	// IntervalSyncDebounce batches rapid edits into one remote push.
	IntervalSyncDebounce = 5 * time.Second
	IntervalMinute       = 1 * time.Minute
)
