package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sleeponit/sleep-on-it/internal/cli"
	"github.com/sleeponit/sleep-on-it/internal/common"
	"github.com/sleeponit/sleep-on-it/internal/model"
	"github.com/sleeponit/sleep-on-it/internal/service"
)

func resolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <id>",
		Short: "Resolve a pending impulse after sleeping on it",
		Long: `Resolve a pending impulse as cancelled or executed. Executed impulses can
carry a feeling (happy, neutral, regret) so the pattern engine can track
which habits you end up regretting.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cancelled, _ := cmd.Flags().GetBool("cancel")
			executed, _ := cmd.Flags().GetBool("execute")
			if cancelled == executed {
				return fmt.Errorf("exactly one of --cancel or --execute is required")
			}

			status := model.StatusCancelled
			if executed {
				status = model.StatusExecuted
			}

			var feeling *model.Feeling
			if feelingFlag, _ := cmd.Flags().GetString("feeling"); feelingFlag != "" {
				f := model.Feeling(feelingFlag)
				if !f.Valid() {
					return fmt.Errorf("unknown feeling %q (valid: happy, neutral, regret)", feelingFlag)
				}
				feeling = &f
			}

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := expandImpulseID(ctx, db, args[0])
			if err != nil {
				return err
			}

			if err := db.ResolveImpulse(ctx, id, status, feeling, time.Now()); err != nil {
				return common.NewUserError("could not resolve impulse", err)
			}

			if status == model.StatusCancelled {
				fmt.Println(cli.FormatSuccess("Cancelled. That money stays yours."))
			} else {
				fmt.Println(cli.FormatSuccess("Marked as executed."))
			}

			return nil
		},
	}

	cmd.Flags().Bool("cancel", false, "resolve the impulse as cancelled")
	cmd.Flags().Bool("execute", false, "resolve the impulse as executed")
	cmd.Flags().StringP("feeling", "f", "", "how you feel about it (happy, neutral, regret)")
	return cmd
}

// expandImpulseID accepts a full impulse id or an unambiguous prefix.
func expandImpulseID(ctx context.Context, db service.Storage, input string) (string, error) {
	if _, err := db.GetImpulseByID(ctx, input); err == nil {
		return input, nil
	}

	impulses, err := db.ListImpulses(ctx, service.ImpulseFilter{})
	if err != nil {
		return "", fmt.Errorf("failed to list impulses: %w", err)
	}

	match := ""
	for _, imp := range impulses {
		if len(input) > 0 && len(imp.ID) >= len(input) && imp.ID[:len(input)] == input {
			if match != "" {
				return "", fmt.Errorf("impulse id prefix %q is ambiguous", input)
			}
			match = imp.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: impulse %s", common.ErrNotFound, input)
	}
	return match, nil
}
