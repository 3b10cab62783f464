package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sleeponit/sleep-on-it/internal/cli"
	"github.com/sleeponit/sleep-on-it/internal/model"
	"github.com/sleeponit/sleep-on-it/internal/pattern"
	"github.com/sleeponit/sleep-on-it/internal/service"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <title>",
		Short: "Check a would-be purchase against your known habits",
		Long: `Score a candidate purchase against your detected recurring patterns
without saving anything. Strong matches mean you're about to repeat a
habit you've logged many times before.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			categoryFlag, _ := cmd.Flags().GetString("category")
			category, err := parseCategory(categoryFlag)
			if err != nil {
				return err
			}

			var price *float64
			if cmd.Flags().Changed("price") {
				p, _ := cmd.Flags().GetFloat64("price")
				price = &p
			}

			candidate := model.Impulse{
				ID:        "candidate",
				Title:     strings.Join(args, " "),
				Category:  category,
				Price:     price,
				Status:    model.StatusPending,
				CreatedAt: time.Now(),
			}

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			matched := warnAboutHabits(ctx, db, candidate)
			if !matched {
				fmt.Println(cli.FormatSuccess("No known habit matches. Still worth sleeping on it."))
			}

			return nil
		},
	}

	cmd.Flags().StringP("category", "c", "", fmt.Sprintf("candidate category (%s)", categoryList()))
	cmd.Flags().Float64P("price", "p", 0, "candidate price")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

// warnAboutHabits runs the engine over stored impulses, scores the
// candidate against the result, and prints a warning box per match.
// It reports whether anything matched.
func warnAboutHabits(ctx context.Context, db service.Storage, candidate model.Impulse) bool {
	impulses, err := db.ListImpulses(ctx, service.ImpulseFilter{})
	if err != nil {
		slog.Warn("Failed to load impulses for habit check", "error", err)
		return false
	}

	engine := pattern.NewDefault()
	patterns := engine.Detect(impulses, time.Now())
	matches := engine.Match(candidate, patterns)

	for _, match := range matches {
		p := match.Pattern

		var lines []string
		lines = append(lines, fmt.Sprintf("Match score %.0f%% against a %s %s pattern (%d occurrences).",
			match.MatchScore, p.Strength, p.Type, p.TotalOccurrences))
		if p.RegretRate > 0 {
			lines = append(lines, fmt.Sprintf("You regretted %.0f%% of these.", p.RegretRate))
		}
		if p.NextPredictedDate != nil {
			lines = append(lines, fmt.Sprintf("The engine already expected the next one around %s.",
				p.NextPredictedDate.Format("Jan 2 15:04")))
		}
		lines = append(lines, p.Suggestions...)

		fmt.Println(cli.RenderWarningBox("This looks like a habit", strings.Join(lines, "\n")))
	}

	return len(matches) > 0
}
