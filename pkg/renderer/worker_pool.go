package renderer

import (
	"context"
	"sync"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int
	Ctx    context.Context
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID  int
	Samples int
	Error   error
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual tile rendering tasks
type Worker struct {
	ID          int
	engine      *Engine
	taskQueue   chan TileTask
	resultQueue chan TileResult
}

// NewWorkerPool creates a worker pool rendering into engine's image.
// Queues are buffered for numTasks so submitting never blocks.
func NewWorkerPool(engine *Engine, numWorkers, numTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 1
	}

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, numTasks),
		resultQueue: make(chan TileResult, numTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			engine:      engine,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Tiles never overlap, so each pixel has exactly one writer
		ctx := task.Ctx
		if ctx == nil {
			ctx = context.Background()
		}
		samples, err := w.engine.renderBounds(ctx, task.Tile.Bounds)

		w.resultQueue <- TileResult{
			TaskID:  task.TaskID,
			Samples: samples,
			Error:   err,
		}
	}
}
