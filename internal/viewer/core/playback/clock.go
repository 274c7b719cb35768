package playback

import (
	"sync"
	"time"
)

// Task is a handle on a repeating callback.
type Task interface {
	Stop()
}

// Clock runs fn every d until the returned Task is stopped.
type Clock interface {
	Every(d time.Duration, fn func()) Task
}

// RealClock schedules on a time.Ticker in its own goroutine.
type RealClock struct{}

func (RealClock) Every(d time.Duration, fn func()) Task {
	t := &tickerTask{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	go t.run(fn)
	return t
}

type tickerTask struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *tickerTask) run(fn func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			select {
			case <-t.done:
				return
			default:
			}
			fn()
		}
	}
}

// Stop never blocks, so it is safe to call while fn waits on a lock the
// caller holds.
func (t *tickerTask) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}

// ManualClock fires tasks only when Advance is called. Tests and
// step-through tooling use it in place of RealClock.
type ManualClock struct {
	mu    sync.Mutex
	tasks []*manualTask
}

type manualTask struct {
	clock   *ManualClock
	fn      func()
	stopped bool
}

func NewManualClock() *ManualClock {
	return &ManualClock{}
}

func (c *ManualClock) Every(_ time.Duration, fn func()) Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTask{clock: c, fn: fn}
	c.tasks = append(c.tasks, t)
	return t
}

// Advance fires every live task n times, one round at a time.
func (c *ManualClock) Advance(n int) {
	for i := 0; i < n; i++ {
		for _, t := range c.live() {
			c.mu.Lock()
			stopped := t.stopped
			c.mu.Unlock()
			if !stopped {
				t.fn()
			}
		}
	}
}

// Active counts tasks that have not been stopped.
func (c *ManualClock) Active() int {
	return len(c.live())
}

func (c *ManualClock) live() []*manualTask {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*manualTask, 0, len(c.tasks))
	for _, t := range c.tasks {
		if !t.stopped {
			out = append(out, t)
		}
	}
	return out
}

func (t *manualTask) Stop() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	t.stopped = true
}
