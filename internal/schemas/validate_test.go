package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFilterState_Valid(t *testing.T) {
	tests := []string{
		`{"keywords":"ICU nurse","roles":["Nurse"],"countries":["Canada"],"visaSponsorshipRequired":true,"internationalApplicantsOnly":false,"datePostedFilter":"month"}`,
		`{"keywords":"","roles":[],"countries":[]}`,
	}

	for _, doc := range tests {
		assert.NoError(t, ValidateFilterState([]byte(doc)), doc)
	}
}

func TestValidateFilterState_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{name: "missing roles", doc: `{"keywords":"","countries":[]}`, field: "(root)"},
		{name: "roles not array", doc: `{"keywords":"","roles":"Nurse","countries":[]}`, field: "roles"},
		{name: "keywords not string", doc: `{"keywords":5,"roles":[],"countries":[]}`, field: "keywords"},
		{name: "unknown window", doc: `{"keywords":"","roles":[],"countries":[],"datePostedFilter":"year"}`, field: "datePostedFilter"},
		{name: "bool as string", doc: `{"keywords":"","roles":[],"countries":[],"visaSponsorshipRequired":"yes"}`, field: "visaSponsorshipRequired"},
		{name: "not an object", doc: `[]`, field: "(root)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilterState([]byte(tt.doc))
			require.Error(t, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			require.NotEmpty(t, validationErr.Errors)
			assert.Equal(t, tt.field, validationErr.Errors[0].Field)
		})
	}
}

func TestValidateFilterState_NotJSON(t *testing.T) {
	err := ValidateFilterState([]byte("{not json"))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}
