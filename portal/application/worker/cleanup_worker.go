package worker

import (
	"context"
	"sync"
	"time"

	"github.com/hireline/hireline/pkg/logx"
	"github.com/hireline/hireline/portal/application"
	"github.com/hireline/hireline/portal/application/applicationinfra"
)

const dequeueTimeout = 5 * time.Second

// CleanupWorker drains the orphaned-upload queue in the background and
// deletes the stored files. Deletion is idempotent on the store side, so a
// job that is retried after a crash is harmless.
type CleanupWorker struct {
	queue       *applicationinfra.RedisCleanupQueue
	resumeStore application.ResumeStore
	workers     int

	wg sync.WaitGroup
}

// NewCleanupWorker creates a cleanup worker pool of the given size.
func NewCleanupWorker(queue *applicationinfra.RedisCleanupQueue, resumeStore application.ResumeStore, workers int) *CleanupWorker {
	if workers < 1 {
		workers = 1
	}
	return &CleanupWorker{
		queue:       queue,
		resumeStore: resumeStore,
		workers:     workers,
	}
}

// Start launches the worker pool. Workers run until ctx is cancelled.
func (w *CleanupWorker) Start(ctx context.Context) {
	logx.Infof("Starting %d cleanup workers", w.workers)

	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go func(id int) {
			defer w.wg.Done()
			w.run(ctx, id)
		}(i)
	}
}

// Wait blocks until all workers have exited.
func (w *CleanupWorker) Wait() {
	w.wg.Wait()
}

func (w *CleanupWorker) run(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			logx.Infof("Cleanup worker %d stopping", id)
			return
		default:
		}

		job, err := w.queue.Dequeue(ctx, dequeueTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logx.Errorf("Cleanup worker %d failed to dequeue: %v", id, err)
			time.Sleep(time.Second)
			continue
		}

		if job == nil {
			// Timeout elapsed with nothing queued.
			continue
		}

		if err := w.resumeStore.Delete(ctx, job.PublicID); err != nil {
			logx.Warnf("Cleanup worker %d could not delete %s, requeueing: %v", id, job.PublicID, err)
			if err := w.queue.Enqueue(ctx, job.PublicID); err != nil {
				logx.Errorf("Cleanup worker %d lost orphaned resume %s: %v", id, job.PublicID, err)
			}
			continue
		}

		logx.Infof("Cleanup worker %d deleted orphaned resume %s", id, job.PublicID)
	}
}
