//nolint:revive // types is a standard Go package name pattern
package types

// VerificationStatus is a best-effort trust signal for a job posting.
// It is derived from text heuristics and is not a guarantee of authenticity.
type VerificationStatus string

const (
	VerificationVerified   VerificationStatus = "verified"
	VerificationLikely     VerificationStatus = "likely"
	VerificationUnverified VerificationStatus = "unverified"
)

// Valid reports whether s is one of the known statuses.
func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationVerified, VerificationLikely, VerificationUnverified:
		return true
	}
	return false
}

// Job is one normalized employer posting.
// Jobs are built fresh per search response and never mutated afterwards.
type Job struct {
	Title                          string             `json:"title"`
	Company                        string             `json:"company"`
	Location                       string             `json:"location"`
	Description                    string             `json:"description"`
	ApplyLink                      string             `json:"applyLink"`
	RequiredDocuments              []string           `json:"requiredDocuments"`
	VisaSponsorshipAvailable       bool               `json:"visaSponsorshipAvailable"`
	InternationalApplicantsWelcome bool               `json:"internationalApplicantsWelcome"`
	PostedDate                     string             `json:"postedDate"` // YYYY-MM-DD
	DaysAgo                        int                `json:"daysAgo"`
	Source                         string             `json:"source"`
	VerificationStatus             VerificationStatus `json:"verificationStatus"`
}

// GroundingSource is a web citation attached to a model response.
type GroundingSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// SearchResult is the state exposed to the presentation layer.
type SearchResult struct {
	Jobs     []Job             `json:"jobs"`
	Insights string            `json:"insights"`
	Sources  []GroundingSource `json:"sources"`
	Error    *AppError         `json:"error"`
	Loading  bool              `json:"loading"`
}
