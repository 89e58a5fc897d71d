/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pool.go
Description: Bounded worker pool used by the verification engine. Tasks are submitted
with a context so a cancelled run stops queueing work.
*/

package verify

import (
	"context"
	"errors"
	"sync"
)

// ErrPoolShutdown is returned when submitting to a pool that has been shut down.
var ErrPoolShutdown = errors.New("worker pool has been shutdown")

// workerPool runs submitted tasks on a fixed number of goroutines
type workerPool struct {
	tasks  chan func()
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// newWorkerPool starts workers goroutines. The task queue holds twice as many
// tasks as there are workers before Submit blocks.
func newWorkerPool(workers int) *workerPool {
	if workers <= 0 {
		workers = 1
	}
	p := &workerPool{tasks: make(chan func(), workers*2)}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *workerPool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		task()
	}
}

// Submit queues task, blocking while the queue is full.
func (p *workerPool) Submit(ctx context.Context, task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolShutdown
	}
	select {
	case p.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops accepting tasks and waits for queued ones to finish.
func (p *workerPool) Shutdown() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
	p.mu.Unlock()
	p.wg.Wait()
}
