package parsing

import (
	"sort"
	"time"

	"github.com/jonathan/healthjobfinder/internal/types"
)

// DateLayout is the calendar date format used for postedDate.
const DateLayout = "2006-01-02"

var postedDateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParsePostedDate parses a posting date in now's location.
func ParsePostedDate(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range postedDateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

// DaysAgo returns the number of whole calendar days between postedDate and now.
// Both sides are reduced to their calendar date in now's location, so a posting
// from today is 0 and a future date is clamped to 0. Unparseable dates yield 0.
func DaysAgo(postedDate string, now time.Time) int {
	posted, ok := ParsePostedDate(postedDate, now.Location())
	if !ok {
		return 0
	}
	// Compare civil dates in UTC to keep DST transitions from skewing the count.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(posted.Year(), posted.Month(), posted.Day(), 0, 0, 0, 0, time.UTC)

	days := int(today.Sub(day).Hours() / 24)
	return max(0, days)
}

// Today formats now as an ISO calendar date.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// FilterByDate keeps jobs inside the recency window. DatePostedAll returns the input unchanged.
func FilterByDate(jobs []types.Job, filter types.DatePostedFilter) []types.Job {
	maxDays := filter.MaxDays()
	if maxDays == 0 {
		return jobs
	}

	filtered := make([]types.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.DaysAgo <= maxDays {
			filtered = append(filtered, job)
		}
	}
	return filtered
}

// SortByRecency orders jobs most recent first. Ties keep their input order.
func SortByRecency(jobs []types.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].DaysAgo < jobs[j].DaysAgo
	})
}

// ApplyDateWindow filters and sorts a copy of jobs; the input slice is left as is.
func ApplyDateWindow(jobs []types.Job, filter types.DatePostedFilter) []types.Job {
	out := make([]types.Job, 0, len(jobs))
	out = append(out, FilterByDate(jobs, filter)...)
	SortByRecency(out)
	return out
}
