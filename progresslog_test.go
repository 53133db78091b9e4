package paillier

import (
	"sync"
	"sync/atomic"
)

type TestFollower struct {
	count int64

	mu    sync.Mutex
	steps []string
	done  int64
}

func (t *TestFollower) StepStart(desc string, intermediates int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.steps = append(t.steps, desc)
}

func (t *TestFollower) Tick() {
	atomic.AddInt64(&t.count, 1)
}

func (t *TestFollower) StepDone() {
	atomic.AddInt64(&t.done, 1)
}

func (t *TestFollower) Count() int64 {
	return atomic.LoadInt64(&t.count)
}
