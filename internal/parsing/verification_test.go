package parsing

import (
	"testing"

	"github.com/jonathan/healthjobfinder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestClassifyVerification(t *testing.T) {
	tests := []struct {
		name        string
		description string
		source      string
		want        types.VerificationStatus
	}{
		{
			name:        "verified badge",
			description: "Verified by LinkedIn Verified badge",
			want:        types.VerificationVerified,
		},
		{
			name:        "job board mention",
			description: "Posted on Indeed",
			want:        types.VerificationLikely,
		},
		{
			name:        "nothing recognizable",
			description: "Great opportunity!",
			source:      "CompanyBlog",
			want:        types.VerificationUnverified,
		},
		{
			name:        "verified pattern in source",
			description: "Great opportunity!",
			source:      "Official NHS Jobs",
			want:        types.VerificationVerified,
		},
		{
			name:   "likely pattern in source, any case",
			source: "GLASSDOOR",
			want:   types.VerificationLikely,
		},
		{
			name:        "verified beats likely",
			description: "Certified employer, also listed on Seek",
			source:      "Seek",
			want:        types.VerificationVerified,
		},
		{
			name: "empty inputs",
			want: types.VerificationUnverified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyVerification(tt.description, tt.source))
		})
	}
}
