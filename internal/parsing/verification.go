package parsing

import (
	"strings"

	"github.com/jonathan/healthjobfinder/internal/types"
)

type verificationRule struct {
	status   types.VerificationStatus
	patterns []string
}

// verificationRules is checked in order; the first rule with a matching pattern wins.
var verificationRules = []verificationRule{
	{
		status: types.VerificationVerified,
		patterns: []string{
			"verified by",
			"official",
			"certified",
			"company official page",
			"linkedin verified",
		},
	},
	{
		status: types.VerificationLikely,
		patterns: []string{
			"linkedin",
			"indeed",
			"glassdoor",
			"seek",
			"recruitment agency",
		},
	},
}

// ClassifyVerification derives a trust tier from the job description and source name.
// It is a keyword heuristic and says nothing definitive about a posting's authenticity.
func ClassifyVerification(description, source string) types.VerificationStatus {
	desc := strings.ToLower(description)
	src := strings.ToLower(source)

	for _, rule := range verificationRules {
		for _, p := range rule.patterns {
			if strings.Contains(desc, p) || strings.Contains(src, p) {
				return rule.status
			}
		}
	}
	return types.VerificationUnverified
}
