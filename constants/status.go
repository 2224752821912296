package constants

// JobStatus is the canonical status for rows in jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending    JobStatus = "pending"     // unstarted, may be unassigned
	JobStatusInProgress JobStatus = "in_progress" // started, start_time set
	JobStatusCompleted  JobStatus = "completed"   // finished, both timestamps set
)

// Statuses holds the allowed values for the jobs status column.
var Statuses = []string{
	string(JobStatusPending),
	string(JobStatusInProgress),
	string(JobStatusCompleted),
}

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusInProgress, JobStatusCompleted:
		return true
	}
	return false
}
