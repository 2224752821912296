package photos

import (
	"bytes"
	"context"
	"image"
	"log/slog"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/google/uuid"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"

	"github.com/joseph-ayodele/mowbot/internal/common"
	"github.com/joseph-ayodele/mowbot/internal/repository"
)

// Ingestor runs the photo pipeline: validate as a decodable image,
// re-encode to canonical WebP, persist to the content store, append the
// reference to the job. Any failing step aborts the whole append and
// leaves nothing referenced.
type Ingestor struct {
	jobs    repository.JobRepository
	store   *ContentStore
	ledger  *Ledger
	quality float32
	logger  *slog.Logger

	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func NewIngestor(jobs repository.JobRepository, store *ContentStore, ledger *Ledger, quality float32, logger *slog.Logger) *Ingestor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Ingestor{
		jobs:    jobs,
		store:   store,
		ledger:  ledger,
		quality: quality,
		logger:  logger,
		locks:   make(map[int]*sync.Mutex),
	}
}

// jobLock serializes ingestion per job so the daily quota check and the
// append cannot interleave across concurrent uploaders.
func (i *Ingestor) jobLock(jobID int) *sync.Mutex {
	i.mu.Lock()
	defer i.mu.Unlock()
	l, ok := i.locks[jobID]
	if !ok {
		l = &sync.Mutex{}
		i.locks[jobID] = l
	}
	return l
}

// Ingest appends one photo to a job's ledger for today. It returns the new
// reference and the job's photo count for today after the append.
func (i *Ingestor) Ingest(ctx context.Context, jobID int, raw []byte) (string, int, error) {
	lock := i.jobLock(jobID)
	lock.Lock()
	defer lock.Unlock()

	job, err := i.jobs.Get(ctx, jobID)
	if err != nil {
		return "", 0, err
	}

	today := i.ledger.Today()
	count := CountForDate(job.Photos, today)
	if count >= DailyQuota {
		return "", count, common.ErrQuotaExceeded
	}

	canonical, err := i.canonicalize(raw)
	if err != nil {
		i.logger.Warn("photo rejected", "job_id", jobID, "error", err)
		return "", count, common.NewAppError("INVALID_IMAGE", "photo failed validation", common.ErrInvalidImage)
	}

	ref := NewRefName(jobID, today, uuid.NewString())
	if err := i.store.Write(ref, canonical); err != nil {
		i.logger.Error("photo write failed", "job_id", jobID, "ref", ref, "error", err)
		return "", count, err
	}
	if err := i.jobs.AppendPhoto(ctx, jobID, ref); err != nil {
		// never leave unreferenced content behind
		_ = i.store.Remove(ref)
		return "", count, err
	}

	i.logger.Info("photo ingested", "job_id", jobID, "ref", ref, "today_count", count+1)
	return ref, count + 1, nil
}

// canonicalize decodes the payload (JPEG/PNG/GIF/WebP) and re-encodes it as
// lossy WebP. Corrupt or non-image payloads fail the decode.
func (i *Ingestor) canonicalize(raw []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	opts, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, i.quality)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := webp.Encode(&out, img, opts); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
