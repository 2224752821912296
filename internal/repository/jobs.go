package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/mowbot/constants"
	"github.com/joseph-ayodele/mowbot/gen/ent"
	"github.com/joseph-ayodele/mowbot/gen/ent/job"
	"github.com/joseph-ayodele/mowbot/internal/common"
	"github.com/joseph-ayodele/mowbot/internal/entity"
	"github.com/joseph-ayodele/mowbot/internal/utils"
)

// StatusCounts is the director dashboard overview.
type StatusCounts struct {
	Total     int
	Active    int
	Completed int
}

// SiteFields wraps the read-mostly reference data carried by a job row,
// used when provisioning jobs from the site directory.
type SiteFields struct {
	SiteName       string
	Quote          string
	Address        string
	OrderNo        string
	OrderPeriod    string
	Area           string
	SummerSchedule string
	WinterSchedule string
	Contact        string
	GateCode       string
	MapLink        string
}

type JobRepository interface {
	Get(ctx context.Context, id int) (*entity.Job, error)
	ListUnassigned(ctx context.Context, page, pageSize int) ([]*entity.Job, error)
	ListByAssignee(ctx context.Context, employeeID int64, excludeStatus *constants.JobStatus) ([]*entity.Job, error)
	ListCompleted(ctx context.Context, employeeID int64, limit int) ([]*entity.Job, error)
	CountByStatus(ctx context.Context) (StatusCounts, error)

	// Transition is an atomic compare-and-set on status keyed by job id.
	// The loser of a double-tap race observes common.ErrInvalidTransition.
	Transition(ctx context.Context, id int, expected, next constants.JobStatus, at time.Time) error
	Assign(ctx context.Context, ids []int, employeeID int64) (int, error)
	AppendPhoto(ctx context.Context, id int, ref string) error
	ResetStaleJobs(ctx context.Context, localDate string) (int, error)

	UpsertSite(ctx context.Context, fields SiteFields) (*entity.Job, bool, error)
}

type jobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewJobRepository(client *ent.Client, logger *slog.Logger) JobRepository {
	return &jobRepository{client: client, logger: logger}
}

func (r *jobRepository) Get(ctx context.Context, id int) (*entity.Job, error) {
	row, err := r.client.Job.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("job get failed", "job_id", id, "error", err)
		return nil, err
	}
	return utils.ToJob(row), nil
}

func (r *jobRepository) ListUnassigned(ctx context.Context, page, pageSize int) ([]*entity.Job, error) {
	if page < 1 {
		page = 1
	}
	rows, err := r.client.Job.Query().
		Where(job.AssignedToIsNil()).
		Order(ent.Asc(job.FieldID)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		r.logger.Error("unassigned listing failed", "page", page, "error", err)
		return nil, err
	}
	return utils.ToJobs(rows), nil
}

func (r *jobRepository) ListByAssignee(ctx context.Context, employeeID int64, excludeStatus *constants.JobStatus) ([]*entity.Job, error) {
	q := r.client.Job.Query().Where(job.AssignedToEQ(employeeID))
	if excludeStatus != nil {
		q = q.Where(job.StatusNEQ(string(*excludeStatus)))
	}
	rows, err := q.Order(ent.Asc(job.FieldID)).All(ctx)
	if err != nil {
		r.logger.Error("assignee listing failed", "employee_id", employeeID, "error", err)
		return nil, err
	}
	return utils.ToJobs(rows), nil
}

func (r *jobRepository) ListCompleted(ctx context.Context, employeeID int64, limit int) ([]*entity.Job, error) {
	rows, err := r.client.Job.Query().
		Where(
			job.AssignedToEQ(employeeID),
			job.StatusEQ(string(constants.JobStatusCompleted)),
		).
		Order(ent.Desc(job.FieldFinishTime)).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("completed listing failed", "employee_id", employeeID, "error", err)
		return nil, err
	}
	return utils.ToJobs(rows), nil
}

func (r *jobRepository) CountByStatus(ctx context.Context) (StatusCounts, error) {
	var out StatusCounts
	total, err := r.client.Job.Query().Count(ctx)
	if err != nil {
		return out, err
	}
	active, err := r.client.Job.Query().
		Where(job.StatusEQ(string(constants.JobStatusInProgress))).Count(ctx)
	if err != nil {
		return out, err
	}
	completed, err := r.client.Job.Query().
		Where(job.StatusEQ(string(constants.JobStatusCompleted))).Count(ctx)
	if err != nil {
		return out, err
	}
	out = StatusCounts{Total: total, Active: active, Completed: completed}
	return out, nil
}

func (r *jobRepository) Transition(ctx context.Context, id int, expected, next constants.JobStatus, at time.Time) error {
	upd := r.client.Job.Update().
		Where(job.IDEQ(id), job.StatusEQ(string(expected))).
		SetStatus(string(next))
	switch next {
	case constants.JobStatusInProgress:
		upd = upd.SetStartTime(at)
	case constants.JobStatusCompleted:
		upd = upd.SetFinishTime(at)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("transition failed", "job_id", id, "expected", expected, "next", next, "error", err)
		return err
	}
	if n > 0 {
		r.logger.Info("job transitioned", "job_id", id, "from", expected, "to", next)
		return nil
	}

	// The guarded update matched no row: either the job is gone or its
	// status no longer equals expected (a lost double-tap race).
	exists, err := r.client.Job.Query().Where(job.IDEQ(id)).Exist(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return common.ErrNotFound
	}
	return common.ErrInvalidTransition
}

func (r *jobRepository) Assign(ctx context.Context, ids []int, employeeID int64) (int, error) {
	// Best-effort per id: missing jobs are skipped, a single row is never
	// left half-written.
	assigned := 0
	for _, id := range ids {
		n, err := r.client.Job.Update().
			Where(job.IDEQ(id)).
			SetAssignedTo(employeeID).
			Save(ctx)
		if err != nil {
			r.logger.Error("assign failed", "job_id", id, "employee_id", employeeID, "error", err)
			return assigned, err
		}
		assigned += n
	}
	r.logger.Info("jobs assigned", "count", assigned, "employee_id", employeeID)
	return assigned, nil
}

func (r *jobRepository) AppendPhoto(ctx context.Context, id int, ref string) error {
	n, err := r.client.Job.Update().
		Where(job.IDEQ(id)).
		AppendPhotos([]string{ref}).
		Save(ctx)
	if err != nil {
		r.logger.Error("photo append failed", "job_id", id, "ref", ref, "error", err)
		return err
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *jobRepository) ResetStaleJobs(ctx context.Context, localDate string) (int, error) {
	n, err := r.client.Job.Update().
		Where(
			job.StatusIn(
				string(constants.JobStatusInProgress),
				string(constants.JobStatusCompleted),
			),
			job.Or(
				job.ScheduledDateIsNil(),
				job.ScheduledDateEQ(localDate),
			),
		).
		SetStatus(string(constants.JobStatusPending)).
		ClearAssignedTo().
		ClearStartTime().
		ClearFinishTime().
		Save(ctx)
	if err != nil {
		r.logger.Error("stale job reset failed", "date", localDate, "error", err)
		return 0, err
	}
	return n, nil
}

func (r *jobRepository) UpsertSite(ctx context.Context, fields SiteFields) (*entity.Job, bool, error) {
	existing, err := r.client.Job.Query().
		Where(job.SiteNameEQ(fields.SiteName)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, false, err
	}

	set := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}

	if existing != nil {
		row, err := existing.Update().
			SetNillableQuote(set(fields.Quote)).
			SetNillableAddress(set(fields.Address)).
			SetNillableOrderNo(set(fields.OrderNo)).
			SetNillableOrderPeriod(set(fields.OrderPeriod)).
			SetNillableArea(set(fields.Area)).
			SetNillableSummerSchedule(set(fields.SummerSchedule)).
			SetNillableWinterSchedule(set(fields.WinterSchedule)).
			SetNillableContact(set(fields.Contact)).
			SetNillableGateCode(set(fields.GateCode)).
			SetNillableMapLink(set(fields.MapLink)).
			Save(ctx)
		if err != nil {
			return nil, false, err
		}
		return utils.ToJob(row), false, nil
	}

	row, err := r.client.Job.Create().
		SetSiteName(fields.SiteName).
		SetNillableQuote(set(fields.Quote)).
		SetNillableAddress(set(fields.Address)).
		SetNillableOrderNo(set(fields.OrderNo)).
		SetNillableOrderPeriod(set(fields.OrderPeriod)).
		SetNillableArea(set(fields.Area)).
		SetNillableSummerSchedule(set(fields.SummerSchedule)).
		SetNillableWinterSchedule(set(fields.WinterSchedule)).
		SetNillableContact(set(fields.Contact)).
		SetNillableGateCode(set(fields.GateCode)).
		SetNillableMapLink(set(fields.MapLink)).
		Save(ctx)
	if err != nil {
		return nil, false, err
	}
	r.logger.Info("site provisioned", "job_id", row.ID, "site", fields.SiteName)
	return utils.ToJob(row), true, nil
}
