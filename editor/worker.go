package editor

import (
	"context"
	"image"
	"runtime"
	"sync"
)

// Job produces a pixel buffer. Capture and composite work both fit this shape.
type Job func(ctx context.Context) (*image.RGBA, error)

// ResultCallback is invoked from a worker goroutine when a job finishes. The
// session passes a closure that posts back into its own loop.
type ResultCallback func(img *image.RGBA, err error)

// Pool is a fixed-size worker pool for capture and composite jobs, with a
// 1-slot input queue for strict back-pressure: a second submission while one
// is pending is refused rather than queued.
type Pool struct {
	jobs chan pending
	wg   sync.WaitGroup
}

type pending struct {
	ctx context.Context
	job Job
	cb  ResultCallback
}

// NewPool creates a pool. Size defaults to NumCPU when size <= 0.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	p := &Pool{jobs: make(chan pending, 1)}
	p.start(size)
	return p
}

func (p *Pool) start(n int) {
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for j := range p.jobs {
				img, err := runWithContext(j.ctx, j.job)
				j.cb(img, err)
			}
		}()
	}
}

// Submit enqueues a job if the single-slot queue is free. Returns false when
// the pool is busy and the job was dropped.
func (p *Pool) Submit(ctx context.Context, job Job, cb ResultCallback) bool {
	select {
	case p.jobs <- pending{ctx: ctx, job: job, cb: cb}:
		return true
	default:
		return false
	}
}

// Close stops the pool after draining submitted work.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
}

// runWithContext honors a ctx deadline around a job that does not itself take
// cancellation. The job keeps running in the background on timeout; its
// result is discarded.
func runWithContext(ctx context.Context, job Job) (*image.RGBA, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok && ctx.Done() == nil {
		return job(ctx)
	}
	type outcome struct {
		img *image.RGBA
		err error
	}
	resCh := make(chan outcome, 1)
	go func() {
		img, err := job(ctx)
		resCh <- outcome{img: img, err: err}
	}()
	select {
	case r := <-resCh:
		return r.img, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
