// Package types provides type definitions for structured data used throughout the job finder.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"slices"

	"github.com/go-playground/validator/v10"
)

// DatePostedFilter selects the recency window applied to job results.
type DatePostedFilter string

const (
	// DatePostedAll keeps every job regardless of age.
	DatePostedAll DatePostedFilter = "all"
	// DatePostedWeek keeps jobs posted within the last 7 days.
	DatePostedWeek DatePostedFilter = "week"
	// DatePostedMonth keeps jobs posted within the last 30 days.
	DatePostedMonth DatePostedFilter = "month"
)

// MaxDays returns the inclusive age limit for the window, or 0 for DatePostedAll.
func (f DatePostedFilter) MaxDays() int {
	switch f {
	case DatePostedWeek:
		return 7
	case DatePostedMonth:
		return 30
	default:
		return 0
	}
}

// FilterState holds the user's search criteria.
// JSON keys match the snapshot format persisted by earlier releases.
type FilterState struct {
	Keywords                    string           `json:"keywords"`
	Roles                       []string         `json:"roles" validate:"dive,required"`
	Countries                   []string         `json:"countries" validate:"dive,required"`
	VisaSponsorshipRequired     bool             `json:"visaSponsorshipRequired"`
	InternationalApplicantsOnly bool             `json:"internationalApplicantsOnly"`
	DatePostedFilter            DatePostedFilter `json:"datePostedFilter" validate:"required,oneof=all week month"`
}

// DefaultFilterState returns an empty search: no keywords, roles or countries, all dates.
func DefaultFilterState() FilterState {
	return FilterState{
		Roles:            []string{},
		Countries:        []string{},
		DatePostedFilter: DatePostedAll,
	}
}

// Validate validates the FilterState using the validator.
func (f *FilterState) Validate() error {
	validate := validator.New()
	return validate.Struct(f)
}

// SortedRoles returns a sorted, de-duplicated copy of Roles. Roles form a set.
func (f FilterState) SortedRoles() []string {
	return sortedCopy(f.Roles)
}

// SortedCountries returns a sorted, de-duplicated copy of Countries.
func (f FilterState) SortedCountries() []string {
	return sortedCopy(f.Countries)
}

func sortedCopy(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	slices.Sort(out)
	return slices.Compact(out)
}
