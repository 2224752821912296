package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/joseph-ayodele/mowbot/internal/photos"
)

// UploadQueue feeds photo payloads through the ingestion pipeline on a
// fixed pool of workers. Each result is handed to the notify callback so
// the bot layer can message the uploader about rejects.
type UploadQueue struct {
	ing     *photos.Ingestor
	notify  func(Result)
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Upload
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*UploadQueue)

func WithWorkers(n int) Option {
	return func(q *UploadQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *UploadQueue) {
		if n > 0 {
			q.ch = make(chan Upload, n)
		}
	}
}
func WithIngestTimeout(d time.Duration) Option {
	return func(q *UploadQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewUploadQueue(ing *photos.Ingestor, notify func(Result), logger *slog.Logger, opts ...Option) *UploadQueue {
	q := &UploadQueue{
		ing:     ing,
		notify:  notify,
		logger:  logger,
		workers: 4,
		timeout: time.Minute,
		ch:      make(chan Upload, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *UploadQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("upload worker started", "worker_id", workerID)

				for u := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					ref, count, err := q.ing.Ingest(ctx, u.JobID, u.Data)
					cancel()

					if err != nil {
						q.logger.Error("photo ingestion failed", "worker_id", workerID, "job_id", u.JobID, "error", err)
					} else {
						q.logger.Info("photo ingested", "worker_id", workerID, "job_id", u.JobID, "ref", ref)
					}
					if q.notify != nil {
						q.notify(Result{Upload: u, Ref: ref, Count: count, Err: err})
					}
				}

				q.logger.Info("upload worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *UploadQueue) Enqueue(_ context.Context, u Upload) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", u.JobID)
		return nil
	}
	select {
	case q.ch <- u:
	default:
		q.logger.Warn("upload queue full, applying backpressure", "job_id", u.JobID)
		q.ch <- u
	}
	return nil
}

func (q *UploadQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("upload queue drained, shutdown complete")
	}
}
