package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type countingPipeline struct {
	mu        sync.Mutex
	processed []string
	done      chan struct{}
	expect    int
}

func (c *countingPipeline) Process(_ context.Context, sub Submission) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.processed = append(c.processed, sub.Filename)
	if len(c.processed) == c.expect {
		close(c.done)
	}
}

func TestWorkerProcessesEveryEnqueuedSubmission(t *testing.T) {
	pipeline := &countingPipeline{done: make(chan struct{}), expect: 5}
	worker := NewWorker(pipeline, 2)
	worker.Start(context.Background())
	defer worker.Stop()

	for i := 0; i < 5; i++ {
		worker.Enqueue(Submission{ID: uuid.New(), Filename: "resume.txt"})
	}

	select {
	case <-pipeline.done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not process all submissions in time")
	}

	pipeline.mu.Lock()
	defer pipeline.mu.Unlock()
	assert.Len(t, pipeline.processed, 5)
}

func TestWorkerStopIsIdempotentForEnqueue(t *testing.T) {
	pipeline := &countingPipeline{done: make(chan struct{}), expect: 1}
	worker := NewWorker(pipeline, 1)
	worker.Start(context.Background())
	worker.Stop()

	// Enqueue after Stop must not block forever.
	finished := make(chan struct{})
	go func() {
		worker.Enqueue(Submission{ID: uuid.New(), Filename: "late.txt"})
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked after Stop")
	}
}
