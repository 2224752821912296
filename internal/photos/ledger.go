package photos

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joseph-ayodele/mowbot/internal/entity"
)

// DailyQuota caps uploads per job per calendar day.
const DailyQuota = 25

// DateFormat is the calendar-date layout embedded in photo references.
const DateFormat = "2006-01-02"

// Ref is the decoded form of a photo reference. The reference string alone
// is enough to recover the owning job and the upload date, no side index.
type Ref struct {
	JobID  int
	Date   string
	Suffix string
}

// NewRefName builds a reference string: job_<id>_<date>_<suffix>.webp.
func NewRefName(jobID int, date, suffix string) string {
	return fmt.Sprintf("job_%d_%s_%s.webp", jobID, date, suffix)
}

// ParseRef decodes a reference string. The second return is false for
// strings that do not follow the naming convention.
func ParseRef(name string) (Ref, bool) {
	var out Ref
	base := strings.TrimSuffix(name, ".webp")
	parts := strings.SplitN(base, "_", 4)
	if len(parts) != 4 || parts[0] != "job" {
		return out, false
	}
	id, err := strconv.Atoi(parts[1])
	if err != nil {
		return out, false
	}
	if _, err := time.Parse(DateFormat, parts[2]); err != nil {
		return out, false
	}
	out = Ref{JobID: id, Date: parts[2], Suffix: parts[3]}
	return out, true
}

// ForDate filters a job's photo sequence to the refs whose embedded date
// equals date, preserving upload order.
func ForDate(refs []string, date string) []string {
	var out []string
	for _, ref := range refs {
		if r, ok := ParseRef(ref); ok && r.Date == date {
			out = append(out, ref)
		}
	}
	return out
}

// CountForDate counts a job's photos for one calendar date.
func CountForDate(refs []string, date string) int {
	return len(ForDate(refs, date))
}

// Ledger resolves calendar dates for the photo partition in a fixed
// deployment timezone. Now is swappable for tests.
type Ledger struct {
	Loc *time.Location
	Now func() time.Time
}

func NewLedger(loc *time.Location) *Ledger {
	return &Ledger{Loc: loc, Now: time.Now}
}

// Today is the current calendar date in the deployment timezone.
func (l *Ledger) Today() string {
	return l.Now().In(l.Loc).Format(DateFormat)
}

// EffectiveDate is the date whose photos a viewer sees by default: the
// completion date once a job is finished, today otherwise.
func (l *Ledger) EffectiveDate(j *entity.Job) string {
	if j.FinishTime != nil {
		return j.FinishTime.In(l.Loc).Format(DateFormat)
	}
	return l.Today()
}
