package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/healthjobfinder/internal/store"
	"github.com/jonathan/healthjobfinder/internal/types"
	"github.com/spf13/cobra"
)

// filterFlags are the search criteria shared by search, insights and filters save.
type filterFlags struct {
	keywords      string
	roles         []string
	countries     []string
	visa          bool
	international bool
	datePosted    string
	useSaved      bool
}

func (f *filterFlags) register(cmd *cobra.Command, withUseSaved bool) {
	fs := cmd.Flags()
	fs.StringVarP(&f.keywords, "keywords", "k", "", "Keywords or qualifications, e.g. \"ICU nurse\"")
	fs.StringSliceVarP(&f.roles, "role", "r", nil, "Job role (repeatable)")
	fs.StringSliceVarP(&f.countries, "country", "c", nil, "Country or region (repeatable)")
	fs.BoolVar(&f.visa, "visa", false, "Only jobs offering visa sponsorship or relocation")
	fs.BoolVar(&f.international, "international", false, "Only jobs welcoming international applicants")
	fs.StringVar(&f.datePosted, "date-posted", string(types.DatePostedAll), "Posting window: all, week or month")
	if withUseSaved {
		fs.BoolVar(&f.useSaved, "use-saved", false, "Start from the saved filters; explicit flags override them")
	}
}

// resolve builds the filters for a run. With --use-saved the saved snapshot is
// the base and only flags given on the command line replace its values.
func (f *filterFlags) resolve(ctx context.Context, cmd *cobra.Command, a *app) (types.FilterState, error) {
	filters := types.DefaultFilterState()

	if f.useSaved {
		saved, err := a.loadSaved(ctx)
		if err != nil {
			return filters, err
		}
		if saved != nil {
			filters = *saved
		}
	}

	changed := func(name string) bool {
		return !f.useSaved || cmd.Flags().Changed(name)
	}
	if changed("keywords") {
		filters.Keywords = f.keywords
	}
	if changed("role") {
		filters.Roles = append([]string{}, f.roles...)
	}
	if changed("country") {
		filters.Countries = append([]string{}, f.countries...)
	}
	if changed("visa") {
		filters.VisaSponsorshipRequired = f.visa
	}
	if changed("international") {
		filters.InternationalApplicantsOnly = f.international
	}
	if changed("date-posted") {
		filters.DatePostedFilter = types.DatePostedFilter(f.datePosted)
	}

	if err := filters.Validate(); err != nil {
		return filters, fmt.Errorf("invalid filters: %w", err)
	}
	return filters, nil
}

// loadSaved returns the saved snapshot, or nil when there is none or it is unusable.
func (a *app) loadSaved(ctx context.Context) (*types.FilterState, error) {
	st, err := store.Open(ctx, a.cfg)
	if err != nil {
		return nil, err
	}
	defer func() { _ = st.Close() }()

	saved, err := st.Load(ctx)
	if errors.Is(err, store.ErrInvalidSnapshot) {
		a.log.Warn().Err(err).Msg("ignoring invalid saved filters")
		return nil, nil
	}
	return saved, err
}
