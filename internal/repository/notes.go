package repository

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/mowbot/constants"
	"github.com/joseph-ayodele/mowbot/gen/ent"
	"github.com/joseph-ayodele/mowbot/gen/ent/job"
	"github.com/joseph-ayodele/mowbot/gen/ent/note"
	"github.com/joseph-ayodele/mowbot/internal/common"
	"github.com/joseph-ayodele/mowbot/internal/entity"
	"github.com/joseph-ayodele/mowbot/internal/utils"
)

type NoteRepository interface {
	Append(ctx context.Context, jobID int, text string, authorID int64, role constants.Role) (*entity.Note, error)
	ListByJob(ctx context.Context, jobID int, limit int) ([]*entity.Note, error)
}

type noteRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewNoteRepository(client *ent.Client, logger *slog.Logger) NoteRepository {
	return &noteRepository{client: client, logger: logger}
}

func (r *noteRepository) Append(ctx context.Context, jobID int, text string, authorID int64, role constants.Role) (*entity.Note, error) {
	exists, err := r.client.Job.Query().Where(job.IDEQ(jobID)).Exist(ctx)
	if err != nil {
		r.logger.Error("note append failed", "job_id", jobID, "error", err)
		return nil, err
	}
	if !exists {
		return nil, common.ErrNotFound
	}

	row, err := r.client.Note.Create().
		SetJobID(jobID).
		SetAuthorID(authorID).
		SetAuthorRole(string(role)).
		SetNote(text).
		Save(ctx)
	if err != nil {
		r.logger.Error("note append failed", "job_id", jobID, "error", err)
		return nil, err
	}
	r.logger.Info("note appended", "job_id", jobID, "author_id", authorID, "role", role)
	return utils.ToNote(row), nil
}

func (r *noteRepository) ListByJob(ctx context.Context, jobID int, limit int) ([]*entity.Note, error) {
	q := r.client.Note.Query().
		Where(note.JobIDEQ(jobID)).
		Order(ent.Desc(note.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("note listing failed", "job_id", jobID, "error", err)
		return nil, err
	}
	out := make([]*entity.Note, len(rows))
	for i, row := range rows {
		out[i] = utils.ToNote(row)
	}
	return out, nil
}
