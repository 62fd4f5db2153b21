package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

// loop runs iterate repeatedly with a pause between iterations until stopped.
// Stop is cooperative: it is observed before an iteration, during the pause and by
// iterate itself via the stop channel. An iteration in progress is never interrupted.
type loop struct {
	name     string
	interval time.Duration
	iterate  func(ctx context.Context, stop <-chan struct{})

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{} // closed when the latest goroutine exits
	wg      sync.WaitGroup
}

func newLoop(name string, interval time.Duration, iterate func(ctx context.Context, stop <-chan struct{})) *loop {
	return &loop{name: name, interval: interval, iterate: iterate}
}

// start launches the loop goroutine, returns false if the loop is already running.
// A new goroutine waits for the previous one to finish its iteration, so at most one
// iteration is in flight even after a quick stop/start.
func (l *loop) start(ctx context.Context) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return false
	}

	prev := l.done
	stop, done := make(chan struct{}), make(chan struct{})
	l.running, l.stop, l.done = true, stop, done

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer close(done)
		l.run(ctx, prev, stop)
	}()
	return true
}

// halt signals the loop to stop, returns false if it was not running
func (l *loop) halt() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.running {
		return false
	}
	close(l.stop)
	l.running = false
	return true
}

func (l *loop) active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// wait blocks until all loop goroutines exit
func (l *loop) wait() {
	l.wg.Wait()
}

func (l *loop) run(ctx context.Context, prev <-chan struct{}, stop <-chan struct{}) {
	if prev != nil {
		select {
		case <-prev:
		case <-ctx.Done():
			return
		}
	}

	lgr.Printf("[INFO] %s loop started, interval %v", l.name, l.interval)
	for {
		select {
		case <-stop:
			lgr.Printf("[INFO] %s loop stopped", l.name)
			return
		case <-ctx.Done():
			lgr.Printf("[DEBUG] %s loop terminated, %v", l.name, ctx.Err())
			return
		default:
		}

		l.iterate(ctx, stop)

		timer := time.NewTimer(l.interval)
		select {
		case <-stop:
			timer.Stop()
			lgr.Printf("[INFO] %s loop stopped", l.name)
			return
		case <-ctx.Done():
			timer.Stop()
			lgr.Printf("[DEBUG] %s loop terminated, %v", l.name, ctx.Err())
			return
		case <-timer.C:
		}
	}
}

// stopped reports whether stop channel is closed, without blocking
func stopped(stop <-chan struct{}) bool {
	select {
	case <-stop:
		return true
	default:
		return false
	}
}
