package service

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"
)

const (
	// WaitTimeout bounds a single long-poll request
	WaitTimeout = 25 * time.Second

	waitChannelBuffer = 1
)

var errWaitShutdownTimeout = errors.New("wait registry shutdown timed out")

// WaitRegistry tracks clients long-polling for a game's move count to change
type WaitRegistry struct {
	mu       sync.RWMutex
	waiters  map[string][]*waitRequest
	shutdown chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

type waitRequest struct {
	moveCount int
	notify    chan struct{}
	timer     *time.Timer
}

// NewWaitRegistry creates an empty registry
func NewWaitRegistry() *WaitRegistry {
	return &WaitRegistry{
		waiters:  make(map[string][]*waitRequest),
		shutdown: make(chan struct{}),
	}
}

// RegisterWait returns a channel that receives once a NotifyGame reports a
// move count different from moveCount, the wait times out, the game is
// removed or the registry shuts down. It does not look at the game's current
// count; callers compare first. Callers cancel ctx once they stop listening.
func (w *WaitRegistry) RegisterWait(ctx context.Context, gameID string, moveCount int) <-chan struct{} {
	req := &waitRequest{
		moveCount: moveCount,
		notify:    make(chan struct{}, waitChannelBuffer),
	}

	select {
	case <-w.shutdown:
		signal(req)
		return req.notify
	default:
	}

	w.mu.Lock()
	req.timer = time.AfterFunc(WaitTimeout, func() { signal(req) })
	w.waiters[gameID] = append(w.waiters[gameID], req)
	w.mu.Unlock()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		select {
		case <-ctx.Done():
			w.removeWaiter(gameID, req)
		case <-w.shutdown:
			w.removeWaiter(gameID, req)
			signal(req)
		}
	}()

	return req.notify
}

// NotifyGame wakes every waiter on gameID whose known move count is stale
func (w *WaitRegistry) NotifyGame(gameID string, currentMoveCount int) {
	w.mu.RLock()
	waitList := slices.Clone(w.waiters[gameID])
	w.mu.RUnlock()

	for _, req := range waitList {
		if req.moveCount != currentMoveCount {
			req.timer.Stop()
			signal(req)
		}
	}
}

// RemoveGame wakes and forgets every waiter on gameID
func (w *WaitRegistry) RemoveGame(gameID string) {
	w.mu.Lock()
	waitList := w.waiters[gameID]
	delete(w.waiters, gameID)
	w.mu.Unlock()

	for _, req := range waitList {
		req.timer.Stop()
		signal(req)
	}
}

// Shutdown releases every pending waiter and waits for the cleanup
// goroutines, up to timeout.
func (w *WaitRegistry) Shutdown(timeout time.Duration) error {
	w.once.Do(func() { close(w.shutdown) })

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return errWaitShutdownTimeout
	}
}

// Waiting reports how many clients are registered on gameID
func (w *WaitRegistry) Waiting(gameID string) int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.waiters[gameID])
}

// signalled returns a wait channel that fires immediately
func signalled() <-chan struct{} {
	ch := make(chan struct{}, waitChannelBuffer)
	ch <- struct{}{}
	return ch
}

func signal(req *waitRequest) {
	select {
	case req.notify <- struct{}{}:
	default:
	}
}

func (w *WaitRegistry) removeWaiter(gameID string, req *waitRequest) {
	w.mu.Lock()
	defer w.mu.Unlock()

	req.timer.Stop()
	w.waiters[gameID] = slices.DeleteFunc(w.waiters[gameID], func(r *waitRequest) bool {
		return r == req
	})
	if len(w.waiters[gameID]) == 0 {
		delete(w.waiters, gameID)
	}
}
