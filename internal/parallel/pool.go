package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of goroutines that run batches of tasks.
//
// Each worker owns a queue and steals from the others when its own runs
// dry, so one slow band does not hold up the rest of a frame.
//
// Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool starts a pool with n workers. n <= 0 means GOMAXPROCS.
func NewPool(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: n,
		queues:  make([]chan func(), n),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), max(4*n, 8))
	}
	p.running.Store(true)

	p.wg.Add(n)
	for i := range n {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]
	for {
		select {
		case <-p.done:
			drain(own)
			return
		case task := <-own:
			task()
			continue
		default:
		}

		if task := p.steal(id); task != nil {
			task()
			continue
		}

		select {
		case <-p.done:
			drain(own)
			return
		case task := <-own:
			task()
		}
	}
}

func drain(q chan func()) {
	for {
		select {
		case task := <-q:
			task()
		default:
			return
		}
	}
}

// steal takes a queued task from any other worker, or returns nil.
func (p *Pool) steal(id int) func() {
	for i := range p.queues {
		if i == id {
			continue
		}
		select {
		case task := <-p.queues[i]:
			return task
		default:
		}
	}
	return nil
}

// Run executes every task and returns when all of them have finished.
// On a closed pool the tasks run on the calling goroutine.
func (p *Pool) Run(tasks []func()) {
	if len(tasks) == 0 {
		return
	}
	if !p.running.Load() || len(tasks) == 1 {
		for _, task := range tasks {
			task()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, task := range tasks {
		wrapped := func() {
			defer wg.Done()
			task()
		}
		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			wrapped()
		}
	}
	wg.Wait()
}

// Close stops the workers after the queued tasks have run.
// It is safe to call more than once.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}
