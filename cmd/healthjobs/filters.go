package main

import (
	"fmt"

	"github.com/jonathan/healthjobfinder/internal/observability"
	"github.com/jonathan/healthjobfinder/internal/store"
	"github.com/jonathan/healthjobfinder/internal/types"
	"github.com/spf13/cobra"
)

func newFiltersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filters",
		Short: "Show, save or clear the saved search filters",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the saved filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			saved, err := a.loadSaved(cmd.Context())
			if err != nil {
				return err
			}
			p := observability.NewPrinter(cmd.OutOrStdout())
			if saved == nil {
				p.PrintFilters(types.DefaultFilterState(), false)
				return nil
			}
			p.PrintFilters(*saved, true)
			return nil
		},
	}

	var ff filterFlags
	save := &cobra.Command{
		Use:   "save",
		Short: "Save the given filters for later runs with --use-saved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, err := ff.resolve(cmd.Context(), cmd, a)
			if err != nil {
				return err
			}

			st, err := store.Open(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			if err := st.Save(cmd.Context(), filters); err != nil {
				return err
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintFilters(filters, true)
			return nil
		},
	}
	ff.register(save, false)

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := store.Open(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			if err := st.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved filters cleared.")
			return nil
		},
	}

	cmd.AddCommand(show, save, clearCmd)
	return cmd
}
