package services

import (
	"context"
	"log"
	"sync"
)

// Worker owns the pool of goroutines that run submissions through the
// pipeline. Enqueue returns as soon as the submission is queued; completion is
// only observable through the broadcast hub.
type Worker interface {
	Start(ctx context.Context)
	Stop()
	Enqueue(sub Submission)
}

type worker struct {
	pipeline    PipelineService
	jobQueue    chan Submission
	concurrency int
	wg          sync.WaitGroup
	stopChan    chan struct{}
}

func NewWorker(pipeline PipelineService, concurrency int) Worker {
	return &worker{
		pipeline:    pipeline,
		jobQueue:    make(chan Submission, 100),
		concurrency: concurrency,
		stopChan:    make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	log.Println("✅ Worker started successfully")
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Worker stopped")
}

// Enqueue implements Worker.
func (w *worker) Enqueue(sub Submission) {
	select {
	case w.jobQueue <- sub:
		log.Printf("📥 Submission %s enqueued\n", sub.ID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue submission %s\n", sub.ID)
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case sub := <-w.jobQueue:
			log.Printf("👷 Worker #%d processing submission %s (%s)\n", workerID, sub.ID, sub.Filename)
			w.pipeline.Process(ctx, sub)
		}
	}
}
