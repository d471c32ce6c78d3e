package parsing

import (
	"testing"
	"time"

	"github.com/jonathan/healthjobfinder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobsWithAges(ages ...int) []types.Job {
	jobs := make([]types.Job, len(ages))
	for i, age := range ages {
		jobs[i] = types.Job{Title: string(rune('A' + i)), DaysAgo: age}
	}
	return jobs
}

func titles(jobs []types.Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.Title
	}
	return out
}

func TestFilterByDate(t *testing.T) {
	jobs := jobsWithAges(0, 7, 8, 30, 31)

	assert.Equal(t, jobs, FilterByDate(jobs, types.DatePostedAll))
	assert.Equal(t, []string{"A", "B"}, titles(FilterByDate(jobs, types.DatePostedWeek)))
	assert.Equal(t, []string{"A", "B", "C", "D"}, titles(FilterByDate(jobs, types.DatePostedMonth)))
}

func TestApplyDateWindow_SortsStable(t *testing.T) {
	jobs := jobsWithAges(12, 3, 40, 3, 0)

	got := ApplyDateWindow(jobs, types.DatePostedAll)
	assert.Equal(t, []string{"E", "B", "D", "A", "C"}, titles(got))

	// input is not reordered
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, titles(jobs))
}

func TestApplyDateWindow_Subsets(t *testing.T) {
	jobs := jobsWithAges(45, 1, 29, 7, 31, 8, 0, 30)

	all := ApplyDateWindow(jobs, types.DatePostedAll)
	month := ApplyDateWindow(jobs, types.DatePostedMonth)
	week := ApplyDateWindow(jobs, types.DatePostedWeek)

	require.Len(t, all, len(jobs))
	assert.Subset(t, titles(all), titles(month))
	assert.Subset(t, titles(month), titles(week))

	for _, set := range [][]types.Job{all, month, week} {
		for i := 1; i < len(set); i++ {
			assert.LessOrEqual(t, set[i-1].DaysAgo, set[i].DaysAgo)
		}
	}
}

func TestDaysAgo_LocalMidnight(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	now := time.Date(2025, time.March, 15, 0, 30, 0, 0, loc)

	assert.Equal(t, 0, DaysAgo("2025-03-15", now))
	assert.Equal(t, 1, DaysAgo("2025-03-14", now))
}

func TestDaysAgo_AcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// 2025-03-09 is the spring-forward day in New York.
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, loc)
	assert.Equal(t, 2, DaysAgo("2025-03-08", now))
}
