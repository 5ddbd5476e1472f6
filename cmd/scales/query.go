package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/handiism/musicscales/internal/model"
)

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scales, optionally filtered by type or size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			typeTag, _ := cmd.Flags().GetString("type")
			moreThan, _ := cmd.Flags().GetInt("more-than")

			var scales []model.Scale
			if typeTag == "" {
				scales = cat.MoreNotesThan(moreThan)
			} else {
				t, err := model.ParseScaleType(typeTag)
				if err != nil {
					return err
				}
				for _, s := range cat.ScalesByType(t) {
					if s.Len() > moreThan {
						scales = append(scales, s)
					}
				}
			}

			if len(scales) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No scales match.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for i, s := range scales {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d notes\t%s\n", i+1, s.Name(), s.Type(), s.Len(), strings.Join(s.Notes(), " - "))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().String("type", "", "only scales of this type: major, minor, pentatonic, blues")
	cmd.Flags().Int("more-than", 0, "only scales with more than this many notes")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show one scale, optionally transposed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			s, err := cat.Find(args[0])
			if err != nil {
				return err
			}

			semitones, _ := cmd.Flags().GetInt("transpose")
			shown := s
			if semitones != 0 {
				if shown, err = a.transpose(s, semitones); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", shown.Name())
			fmt.Fprintf(out, "  Type:  %s\n", shown.Type())
			fmt.Fprintf(out, "  Key:   %s\n", shown.Key())
			fmt.Fprintf(out, "  Notes: %s\n", strings.Join(shown.Notes(), " - "))
			if shown.Description() != "" {
				fmt.Fprintf(out, "  %s\n", shown.Description())
			}
			return nil
		},
	}
	cmd.Flags().Int("transpose", 0, "semitones to transpose by (may be negative)")
	return cmd
}

func newTransposeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transpose NAME",
		Short: "Print a scale transposed by a number of semitones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			s, err := cat.Find(args[0])
			if err != nil {
				return err
			}

			by, _ := cmd.Flags().GetInt("by")
			t, err := a.transpose(s, by)
			if err != nil {
				return err
			}
			a.logger.Printf("transposed %q by %+d using %s modulo", s.Name(), by, a.settings.TransposeMode)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", t.Name(), strings.Join(t.Notes(), " "))
			return nil
		},
	}
	cmd.Flags().Int("by", 0, "semitones to transpose by (may be negative)")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarise the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			st := cat.Stats()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Total scales\t%d\n", st.Total)
			for _, t := range model.ScaleTypes() {
				fmt.Fprintf(tw, "%s scales\t%d\n", t.Title(), st.ByType[t])
			}
			fmt.Fprintf(tw, "Avg notes\t%d\n", st.AverageNotes)
			return tw.Flush()
		},
	}
}

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the scale types present in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			for _, t := range cat.Types() {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}
}
