package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler drives a tick callback on a fixed interval with drift
// correction. It is the only place suspension happens: the callback runs
// synchronously, then the loop sleeps until the next deadline.
type Scheduler struct {
	interval time.Duration
	tick     func()

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	tickCount atomic.Uint64
}

// NewScheduler creates a scheduler invoking tick every interval
func NewScheduler(interval time.Duration, tick func()) *Scheduler {
	return &Scheduler{
		interval: interval,
		tick:     tick,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (s *Scheduler) Start() {
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		go s.loop()
	}
}

// Stop halts the scheduler loop and cancels the pending tick timer.
// Safe to call multiple times; no partial tick is ever interrupted since
// the callback runs synchronously.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		if s.running.CompareAndSwap(true, false) {
			close(s.stopCh)
			s.wg.Wait()
		}
	})
}

// Ticks returns the number of completed ticks
func (s *Scheduler) Ticks() uint64 {
	return s.tickCount.Load()
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	deadline := time.Now().Add(s.interval)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		now := time.Now()

		if !now.Before(deadline) {
			s.tick()
			s.tickCount.Add(1)

			deadline = deadline.Add(s.interval)

			// Drop accumulated lag instead of firing catch-up ticks
			if now.Sub(deadline) > s.interval*2 {
				deadline = now.Add(s.interval)
			}
		}

		sleep := deadline.Sub(time.Now())
		if sleep < 0 {
			sleep = 0
		}

		timer.Reset(sleep)
		select {
		case <-timer.C:
		case <-s.stopCh:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			return
		}
	}
}
