package async

import (
	"context"
	"time"
)

// Upload is one photo payload pulled off the chat transport, waiting for
// the ingestion pipeline. Delivery is at-least-once; the pipeline
// deduplicates by content path, not by request.
type Upload struct {
	UserID      int64
	ChatID      int64
	JobID       int
	Data        []byte
	SubmittedAt time.Time
}

// Result reports one processed upload back to the enqueuer.
type Result struct {
	Upload Upload
	Ref    string
	Count  int // job's photo count for today after the append
	Err    error
}

type Queue interface {
	Enqueue(ctx context.Context, u Upload) error
	Shutdown(ctx context.Context)
}
