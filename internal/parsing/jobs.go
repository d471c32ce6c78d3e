// Package parsing turns loosely-typed model output into validated job records.
package parsing

import (
	"encoding/json"
	"math"
	"time"

	"github.com/jonathan/healthjobfinder/internal/types"
)

// Defaults applied when the model omits a field or returns a falsy value.
const (
	DefaultTitle       = "Unknown Position"
	DefaultCompany     = "Unknown Company"
	DefaultLocation    = "Unknown Location"
	DefaultDescription = "No description provided"
	DefaultSource      = "Unknown Source"
)

// NormalizeJobs reads the "jobs" array from a decoded model payload and normalizes
// each entry. A payload without a jobs array yields an empty, non-nil slice.
func NormalizeJobs(payload any, now time.Time) []types.Job {
	obj, _ := payload.(map[string]any)
	rawJobs, _ := obj["jobs"].([]any)

	jobs := make([]types.Job, 0, len(rawJobs))
	for _, raw := range rawJobs {
		m, _ := raw.(map[string]any)
		jobs = append(jobs, NormalizeJob(m, now))
	}
	return jobs
}

// NormalizeJob maps a partial job object onto a complete Job.
// Every field is treated as optional and type-checked at runtime.
func NormalizeJob(raw map[string]any, now time.Time) types.Job {
	description := stringField(raw, "description", "")
	source := stringField(raw, "source", "")
	postedDate := stringField(raw, "postedDate", Today(now))

	job := types.Job{
		Title:                          stringField(raw, "title", DefaultTitle),
		Company:                        stringField(raw, "company", DefaultCompany),
		Location:                       stringField(raw, "location", DefaultLocation),
		Description:                    orDefault(description, DefaultDescription),
		ApplyLink:                      stringField(raw, "applyLink", ""),
		RequiredDocuments:              stringSliceField(raw, "requiredDocuments"),
		VisaSponsorshipAvailable:       boolField(raw, "visaSponsorshipAvailable"),
		InternationalApplicantsWelcome: boolField(raw, "internationalApplicantsWelcome"),
		PostedDate:                     postedDate,
		Source:                         orDefault(source, DefaultSource),
	}

	if n, ok := numberField(raw, "daysAgo"); ok {
		job.DaysAgo = max(0, int(math.Round(n)))
	} else {
		job.DaysAgo = DaysAgo(postedDate, now)
	}

	// The classifier sees the raw text, not the placeholder defaults.
	status := types.VerificationStatus(stringField(raw, "verificationStatus", ""))
	if !status.Valid() {
		status = ClassifyVerification(description, source)
	}
	job.VerificationStatus = status

	return job
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func stringField(raw map[string]any, key, def string) string {
	if s, ok := raw[key].(string); ok && s != "" {
		return s
	}
	return def
}

func boolField(raw map[string]any, key string) bool {
	b, _ := raw[key].(bool)
	return b
}

// numberField reports a non-zero finite number. Zero counts as missing.
func numberField(raw map[string]any, key string) (float64, bool) {
	var n float64
	switch v := raw[key].(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case float64:
		n = v
	case int:
		n = float64(v)
	default:
		return 0, false
	}
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func stringSliceField(raw map[string]any, key string) []string {
	items, _ := raw[key].([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
