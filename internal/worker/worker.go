package worker

import (
	"context"
	"sync"

	"github.com/AetherPulse/PulseGuard/internal/models"
)

type ProcessFunc func(ctx context.Context, row *models.NormalizedOutbreak) error

// Pool fans normalized outbreak rows out to a fixed set of workers.
type Pool struct {
	numWorkers int
	jobs       chan *models.NormalizedOutbreak
	processor  ProcessFunc
	wg         sync.WaitGroup
}

func NewPool(numWorkers int, bufferSize int, processor ProcessFunc) *Pool {
	return &Pool{
		numWorkers: numWorkers,
		jobs:       make(chan *models.NormalizedOutbreak, bufferSize),
		processor:  processor,
	}
}

func (p *Pool) Start(ctx context.Context) {
	for i := 1; i <= p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case row, ok := <-p.jobs:
			if !ok {
				return
			}
			p.processor(ctx, row)
		}
	}
}

// Submit queues a row for processing. Once ctx is cancelled it fails
// instead of blocking on a full channel whose workers have already exited.
func (p *Pool) Submit(ctx context.Context, row *models.NormalizedOutbreak) error {
	select {
	case p.jobs <- row:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
