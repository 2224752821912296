package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/joseph-ayodele/mowbot/internal/common"
	"github.com/joseph-ayodele/mowbot/internal/entity"
	"github.com/joseph-ayodele/mowbot/internal/photos"
	"github.com/joseph-ayodele/mowbot/internal/repository"
	"github.com/joseph-ayodele/mowbot/internal/utils"

	jobspb "github.com/joseph-ayodele/mowbot/gen/proto/jobs/v1"
)

// JobsService is the operator-facing admin surface: provisioning sites,
// inspecting jobs and forcing the daily reset outside its schedule.
type JobsService struct {
	jobspb.UnimplementedJobsServiceServer
	jobRepo repository.JobRepository
	ledger  *photos.Ledger
	logger  *slog.Logger
}

func NewJobsService(jobRepo repository.JobRepository, ledger *photos.Ledger, logger *slog.Logger) *JobsService {
	return &JobsService{
		jobRepo: jobRepo,
		ledger:  ledger,
		logger:  logger,
	}
}

func (s *JobsService) UpsertSite(ctx context.Context, req *jobspb.UpsertSiteRequest) (*jobspb.UpsertSiteResponse, error) {
	if strings.TrimSpace(req.GetSiteName()) == "" {
		s.logger.Error("upsert site request missing site_name")
		return nil, status.Error(codes.InvalidArgument, "site_name is required")
	}

	j, created, err := s.jobRepo.UpsertSite(ctx, repository.SiteFields{
		SiteName:       strings.TrimSpace(req.GetSiteName()),
		Quote:          req.GetQuote(),
		Address:        req.GetAddress(),
		OrderNo:        req.GetOrderNo(),
		OrderPeriod:    req.GetOrderPeriod(),
		Area:           req.GetArea(),
		SummerSchedule: req.GetSummerSchedule(),
		WinterSchedule: req.GetWinterSchedule(),
		Contact:        req.GetContact(),
		GateCode:       req.GetGateCode(),
		MapLink:        req.GetMapLink(),
	})
	if err != nil {
		s.logger.Error("failed to upsert site", "site", req.GetSiteName(), "error", err)
		return nil, status.Errorf(codes.Internal, "upsert site: %v", err)
	}
	return &jobspb.UpsertSiteResponse{Job: utils.ToPBJob(j), Created: created}, nil
}

func (s *JobsService) GetJob(ctx context.Context, req *jobspb.GetJobRequest) (*jobspb.GetJobResponse, error) {
	if req.GetId() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	j, err := s.jobRepo.Get(ctx, int(req.GetId()))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "job %d not found", req.GetId())
		}
		s.logger.Error("failed to get job", "job_id", req.GetId(), "error", err)
		return nil, status.Errorf(codes.Internal, "get job: %v", err)
	}
	return &jobspb.GetJobResponse{Job: utils.ToPBJob(j)}, nil
}

func (s *JobsService) ListJobs(ctx context.Context, req *jobspb.ListJobsRequest) (*jobspb.ListJobsResponse, error) {
	page := int(req.GetPage())
	if page < 1 {
		page = 1
	}
	pageSize := int(req.GetPageSize())
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	var (
		jobs []*entity.Job
		err  error
	)
	if req.GetAssignedTo() != 0 {
		jobs, err = s.jobRepo.ListByAssignee(ctx, req.GetAssignedTo(), nil)
	} else {
		jobs, err = s.jobRepo.ListUnassigned(ctx, page, pageSize)
	}
	if err != nil {
		s.logger.Error("failed to list jobs", "assigned_to", req.GetAssignedTo(), "error", err)
		return nil, status.Errorf(codes.Internal, "list jobs: %v", err)
	}

	out := make([]*jobspb.Job, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, utils.ToPBJob(j))
	}
	return &jobspb.ListJobsResponse{Jobs: out}, nil
}

func (s *JobsService) TriggerReset(ctx context.Context, req *jobspb.TriggerResetRequest) (*jobspb.TriggerResetResponse, error) {
	date := strings.TrimSpace(req.GetDate())
	if date == "" {
		date = s.ledger.Today()
	} else if _, err := time.Parse(photos.DateFormat, date); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "date invalid (YYYY-MM-DD): %v", err)
	}

	s.logger.Info("manual reset triggered", "date", date)
	n, err := s.jobRepo.ResetStaleJobs(ctx, date)
	if err != nil {
		s.logger.Error("manual reset failed", "date", date, "error", err)
		return nil, status.Errorf(codes.Internal, "reset: %v", err)
	}
	return &jobspb.TriggerResetResponse{JobsReset: int32(n)}, nil
}
