package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sleeponit/sleep-on-it/internal/model"
	"github.com/sleeponit/sleep-on-it/internal/pattern"
	"github.com/sleeponit/sleep-on-it/internal/service"
)

func patternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "patterns",
		Aliases: []string{"pattern"},
		Short:   "Detect recurring impulse patterns",
		Long: `Run the recurring-pattern engine over your impulse history: daily and
weekly habits, time-of-day clusters, price bands, and high-frequency
categories, ranked by confidence with a predicted next occurrence.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			impulses, err := db.ListImpulses(ctx, service.ImpulseFilter{})
			if err != nil {
				return fmt.Errorf("failed to load impulses: %w", err)
			}

			engine := pattern.NewDefault()
			patterns := engine.Detect(impulses, time.Now())

			if len(patterns) == 0 {
				slog.Info("No recurring patterns detected", "impulses", len(impulses))
				return nil
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(patterns)
			}

			verbose, _ := cmd.Flags().GetBool("verbose")
			renderPatternTable(patterns)
			if verbose {
				renderPatternDetails(patterns)
			}

			return nil
		},
	}

	cmd.Flags().Bool("json", false, "emit patterns as JSON")
	cmd.Flags().BoolP("verbose", "v", false, "show insights and suggestions per pattern")
	return cmd
}

func renderPatternTable(patterns []model.Pattern) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TYPE\tCATEGORY\tWHEN\tSTRENGTH\tCONFIDENCE\tSEEN\tREGRET\tAVG PRICE\tNEXT EXPECTED")
	_, _ = fmt.Fprintln(w, "────\t────────\t────\t────────\t──────────\t────\t──────\t─────────\t─────────────")

	for _, p := range patterns {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f%%\t%d\t%.0f%%\t%s\t%s\n",
			p.Type,
			p.Category,
			formatWhen(p),
			p.Strength,
			p.Confidence,
			p.TotalOccurrences,
			p.RegretRate,
			formatAvgPrice(p),
			formatNext(p))
	}

	_ = w.Flush()
}

func renderPatternDetails(patterns []model.Pattern) {
	for _, p := range patterns {
		fmt.Println()
		fmt.Printf("%s / %s\n", p.Type, p.Category)
		for _, insight := range p.Insights {
			fmt.Printf("  • %s\n", insight)
		}
		for _, suggestion := range p.Suggestions {
			fmt.Printf("  → %s\n", suggestion)
		}
	}
}

var shortWeekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func formatWhen(p model.Pattern) string {
	switch {
	case p.DayOfWeek != nil:
		return shortWeekdays[*p.DayOfWeek]
	case p.TimeOfDay != nil:
		return fmt.Sprintf("%02d:00", *p.TimeOfDay)
	default:
		return fmt.Sprintf("every %.1fd", p.AvgInterval)
	}
}

func formatAvgPrice(p model.Pattern) string {
	if p.PriceRange == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", p.PriceRange.Avg)
}

func formatNext(p model.Pattern) string {
	if p.NextPredictedDate == nil {
		return "-"
	}
	return p.NextPredictedDate.Format("2006-01-02 15:04")
}
