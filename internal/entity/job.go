package entity

import (
	"strings"
	"time"

	"github.com/joseph-ayodele/mowbot/constants"
)

// Job represents a maintenance-site work order for data transfer between layers.
type Job struct {
	ID             int                 `json:"id"`
	SiteName       string              `json:"site_name"`
	Quote          *string             `json:"quote,omitempty"`
	Address        *string             `json:"address,omitempty"`
	OrderNo        *string             `json:"order_no,omitempty"`
	OrderPeriod    *string             `json:"order_period,omitempty"`
	Area           *string             `json:"area,omitempty"`
	SummerSchedule *string             `json:"summer_schedule,omitempty"`
	WinterSchedule *string             `json:"winter_schedule,omitempty"`
	Contact        *string             `json:"contact,omitempty"`
	GateCode       *string             `json:"gate_code,omitempty"`
	MapLink        *string             `json:"map_link,omitempty"`
	AssignedTo     *int64              `json:"assigned_to,omitempty"`
	Status         constants.JobStatus `json:"status"`
	StartTime      *time.Time          `json:"start_time,omitempty"`
	FinishTime     *time.Time          `json:"finish_time,omitempty"`
	Photos         []string            `json:"photos,omitempty"`
	ScheduledDate  *string             `json:"scheduled_date,omitempty"`
	Priority       string              `json:"priority"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// Duration reports the start-to-finish span. The second return is false
// until both timestamps are set.
func (j *Job) Duration() (time.Duration, bool) {
	if j.StartTime == nil || j.FinishTime == nil {
		return 0, false
	}
	return j.FinishTime.Sub(*j.StartTime), true
}

var outdoorTerms = []string{"garden", "outdoor", "yard", "field", "grounds", "exterior"}

// Outdoor reports whether the job's area matches the outdoor-keyword
// heuristic used to decide if a weather forecast is worth showing.
func (j *Job) Outdoor() bool {
	if j.Area == nil {
		return false
	}
	area := strings.ToLower(*j.Area)
	for _, term := range outdoorTerms {
		if strings.Contains(area, term) {
			return true
		}
	}
	return false
}

// WeatherLocation is the query string handed to the forecast collaborator:
// the address when present, otherwise the site name anchored to the UK.
func (j *Job) WeatherLocation() string {
	if j.Address != nil && *j.Address != "" {
		return *j.Address
	}
	return j.SiteName + ",UK"
}
