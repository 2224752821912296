package entity

import (
	"time"

	"github.com/joseph-ayodele/mowbot/constants"
)

// Note represents one append-only note row on a job.
type Note struct {
	ID         int            `json:"id"`
	JobID      int            `json:"job_id"`
	AuthorID   int64          `json:"author_id"`
	AuthorRole constants.Role `json:"author_role"`
	Note       string         `json:"note"`
	CreatedAt  time.Time      `json:"created_at"`
}
