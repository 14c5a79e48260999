package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs closures on a fixed set of goroutines.
//
// Every worker owns a buffered queue. Work is dealt round-robin across the
// queues; a worker whose queue is empty steals from the others before it
// blocks. Stealing matters for escape-time rendering because tiles inside
// the set run to the iteration bound while tiles far outside finish almost
// immediately.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case fn := <-own:
			run(fn)
			continue
		default:
		}

		if fn := p.steal(id); fn != nil {
			fn()
			continue
		}

		select {
		case <-p.done:
			p.drain(own)
			return
		case fn := <-own:
			run(fn)
		}
	}
}

func run(fn func()) {
	if fn != nil {
		fn()
	}
}

// drain executes whatever is left in queue without blocking.
func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case fn := <-queue:
			run(fn)
		default:
			return
		}
	}
}

// steal takes one item from another worker's queue, or returns nil.
func (p *WorkerPool) steal(self int) func() {
	for i := 1; i < p.workers; i++ {
		select {
		case fn := <-p.queues[(self+i)%p.workers]:
			return fn
		default:
		}
	}
	return nil
}

// ExecuteAll runs every item in work and returns when all have finished.
// If the pool is closed, ExecuteAll runs the work on the calling goroutine.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	if !p.running.Load() {
		for _, fn := range work {
			run(fn)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(work))

	for i, fn := range work {
		wrapped := func() {
			defer wg.Done()
			run(fn)
		}

		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			wrapped()
		}
	}

	wg.Wait()
}

// Close stops the workers after the queued work has run. It must not race
// with an ExecuteAll call still submitting work.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}
