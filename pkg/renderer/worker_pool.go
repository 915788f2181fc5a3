package renderer

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RowFunc renders a single image row using the worker's sampler
type RowFunc func(row int, sampler core.Sampler)

// WorkerPool renders image rows in parallel. Worker w owns rows w, w+n, w+2n...
// so no two workers ever touch the same row.
type WorkerPool struct {
	numWorkers int
	seed       int64
	linesDone  atomic.Int64
	wg         sync.WaitGroup
}

// NewWorkerPool creates a pool with numWorkers workers, defaulting to the CPU count
func NewWorkerPool(numWorkers int, seed int64) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers, seed: seed}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// LinesDone returns the number of rows completed so far
func (wp *WorkerPool) LinesDone() int64 {
	return wp.linesDone.Load()
}

// Run renders rows [0, height) and blocks until every worker has finished.
// Each worker gets its own sampler seeded with seed+workerID.
func (wp *WorkerPool) Run(height int, renderRow RowFunc) {
	wp.linesDone.Store(0)
	for w := 0; w < wp.numWorkers; w++ {
		wp.wg.Add(1)
		go wp.work(w, height, renderRow)
	}
	wp.wg.Wait()
}

func (wp *WorkerPool) work(id, height int, renderRow RowFunc) {
	defer wp.wg.Done()

	sampler := core.NewSeededSampler(wp.seed + int64(id))
	for _, row := range StripeRows(id, wp.numWorkers, height) {
		renderRow(row, sampler)
		wp.linesDone.Add(1)
	}
}

// StripeRows returns the rows owned by worker id out of numWorkers
func StripeRows(id, numWorkers, height int) []int {
	if numWorkers <= 0 || id < 0 || id >= height {
		return nil
	}
	rows := make([]int, 0, (height-id+numWorkers-1)/numWorkers)
	for row := id; row < height; row += numWorkers {
		rows = append(rows, row)
	}
	return rows
}
