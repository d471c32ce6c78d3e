package parsing

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/healthjobfinder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)

func decode(t *testing.T, s string) any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v any
	require.NoError(t, dec.Decode(&v))
	return v
}

func TestNormalizeJob_EmptyObject(t *testing.T) {
	job := NormalizeJob(map[string]any{}, fixedNow)

	assert.Equal(t, types.Job{
		Title:              DefaultTitle,
		Company:            DefaultCompany,
		Location:           DefaultLocation,
		Description:        DefaultDescription,
		ApplyLink:          "",
		RequiredDocuments:  []string{},
		PostedDate:         "2025-03-15",
		DaysAgo:            0,
		Source:             DefaultSource,
		VerificationStatus: types.VerificationUnverified,
	}, job)
}

func TestNormalizeJob_NilMap(t *testing.T) {
	job := NormalizeJob(nil, fixedNow)
	assert.Equal(t, DefaultTitle, job.Title)
	assert.Equal(t, 0, job.DaysAgo)
}

func TestNormalizeJob_DerivesDaysAgo(t *testing.T) {
	tests := []struct {
		name       string
		postedDate string
		want       int
	}{
		{name: "same day", postedDate: "2025-03-15", want: 0},
		{name: "one week", postedDate: "2025-03-08", want: 7},
		{name: "ten days", postedDate: "2025-03-05", want: 10},
		{name: "across month boundary", postedDate: "2025-02-13", want: 30},
		{name: "future date clamps", postedDate: "2025-03-20", want: 0},
		{name: "timestamp", postedDate: "2025-03-14T23:59:00Z", want: 1},
		{name: "garbage", postedDate: "last tuesday", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := NormalizeJob(map[string]any{"postedDate": tt.postedDate}, fixedNow)
			assert.Equal(t, tt.want, job.DaysAgo)
			assert.Equal(t, tt.postedDate, job.PostedDate)
		})
	}
}

func TestNormalizeJob_SuppliedValues(t *testing.T) {
	raw := decode(t, `{
		"title": "ICU Nurse",
		"company": "Toronto General",
		"location": "Toronto, Canada",
		"description": "Official hospital careers page listing.",
		"applyLink": "https://example.org/apply",
		"requiredDocuments": ["Passport", 42, "NCLEX"],
		"visaSponsorshipAvailable": true,
		"internationalApplicantsWelcome": true,
		"postedDate": "2025-03-01",
		"daysAgo": 3,
		"source": "Hospital site",
		"verificationStatus": "likely"
	}`).(map[string]any)

	job := NormalizeJob(raw, fixedNow)

	assert.Equal(t, "ICU Nurse", job.Title)
	assert.Equal(t, "Toronto General", job.Company)
	assert.Equal(t, "Toronto, Canada", job.Location)
	assert.Equal(t, "https://example.org/apply", job.ApplyLink)
	assert.Equal(t, []string{"Passport", "NCLEX"}, job.RequiredDocuments)
	assert.True(t, job.VisaSponsorshipAvailable)
	assert.True(t, job.InternationalApplicantsWelcome)
	assert.Equal(t, 3, job.DaysAgo, "supplied daysAgo is kept")
	assert.Equal(t, types.VerificationLikely, job.VerificationStatus, "supplied status is kept")
}

func TestNormalizeJob_FalsyAndMistypedFields(t *testing.T) {
	raw := decode(t, `{
		"title": "",
		"company": 12,
		"visaSponsorshipAvailable": "yes",
		"requiredDocuments": "Passport",
		"postedDate": "2025-03-08",
		"daysAgo": 0,
		"verificationStatus": "trusted",
		"source": "Indeed"
	}`).(map[string]any)

	job := NormalizeJob(raw, fixedNow)

	assert.Equal(t, DefaultTitle, job.Title)
	assert.Equal(t, DefaultCompany, job.Company)
	assert.False(t, job.VisaSponsorshipAvailable)
	assert.Empty(t, job.RequiredDocuments)
	assert.Equal(t, 7, job.DaysAgo, "zero daysAgo is derived from postedDate")
	assert.Equal(t, types.VerificationLikely, job.VerificationStatus, "unknown status falls back to classifier")
}

func TestNormalizeJob_NegativeDaysAgoClamped(t *testing.T) {
	job := NormalizeJob(map[string]any{"daysAgo": json.Number("-4")}, fixedNow)
	assert.Equal(t, 0, job.DaysAgo)
}

func TestNormalizeJobs(t *testing.T) {
	t.Run("missing jobs key", func(t *testing.T) {
		jobs := NormalizeJobs(decode(t, `{"results": []}`), fixedNow)
		assert.NotNil(t, jobs)
		assert.Empty(t, jobs)
	})

	t.Run("jobs not an array", func(t *testing.T) {
		jobs := NormalizeJobs(decode(t, `{"jobs": "none"}`), fixedNow)
		assert.Empty(t, jobs)
	})

	t.Run("payload is an array", func(t *testing.T) {
		jobs := NormalizeJobs(decode(t, `[{"title": "x"}]`), fixedNow)
		assert.Empty(t, jobs)
	})

	t.Run("keeps order and non-object entries", func(t *testing.T) {
		jobs := NormalizeJobs(decode(t, `{"jobs": [{"title": "A"}, "junk", {"title": "B"}]}`), fixedNow)
		require.Len(t, jobs, 3)
		assert.Equal(t, "A", jobs[0].Title)
		assert.Equal(t, DefaultTitle, jobs[1].Title)
		assert.Equal(t, "B", jobs[2].Title)
	})
}
