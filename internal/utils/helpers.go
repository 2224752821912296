package utils

import (
	"time"

	"github.com/joseph-ayodele/mowbot/constants"
	"github.com/joseph-ayodele/mowbot/gen/ent"
	jobspb "github.com/joseph-ayodele/mowbot/gen/proto/jobs/v1"
	"github.com/joseph-ayodele/mowbot/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeOrEmpty(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.UTC().Format(time.RFC3339)
}

func ToJob(row *ent.Job) *entity.Job {
	return &entity.Job{
		ID:             row.ID,
		SiteName:       row.SiteName,
		Quote:          row.Quote,
		Address:        row.Address,
		OrderNo:        row.OrderNo,
		OrderPeriod:    row.OrderPeriod,
		Area:           row.Area,
		SummerSchedule: row.SummerSchedule,
		WinterSchedule: row.WinterSchedule,
		Contact:        row.Contact,
		GateCode:       row.GateCode,
		MapLink:        row.MapLink,
		AssignedTo:     row.AssignedTo,
		Status:         constants.JobStatus(row.Status),
		StartTime:      row.StartTime,
		FinishTime:     row.FinishTime,
		Photos:         row.Photos,
		ScheduledDate:  row.ScheduledDate,
		Priority:       row.Priority,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func ToJobs(rows []*ent.Job) []*entity.Job {
	out := make([]*entity.Job, len(rows))
	for i, row := range rows {
		out[i] = ToJob(row)
	}
	return out
}

func ToNote(row *ent.Note) *entity.Note {
	return &entity.Note{
		ID:         row.ID,
		JobID:      row.JobID,
		AuthorID:   row.AuthorID,
		AuthorRole: constants.Role(row.AuthorRole),
		Note:       row.Note,
		CreatedAt:  row.CreatedAt,
	}
}

func ToPBJob(j *entity.Job) *jobspb.Job {
	var assignedTo int64
	if j.AssignedTo != nil {
		assignedTo = *j.AssignedTo
	}
	return &jobspb.Job{
		Id:            int64(j.ID),
		SiteName:      j.SiteName,
		Address:       strOrEmpty(j.Address),
		Area:          strOrEmpty(j.Area),
		Contact:       strOrEmpty(j.Contact),
		GateCode:      strOrEmpty(j.GateCode),
		MapLink:       strOrEmpty(j.MapLink),
		AssignedTo:    assignedTo,
		Status:        string(j.Status),
		StartTime:     timeOrEmpty(j.StartTime),
		FinishTime:    timeOrEmpty(j.FinishTime),
		ScheduledDate: strOrEmpty(j.ScheduledDate),
		PhotoCount:    int32(len(j.Photos)),
	}
}
