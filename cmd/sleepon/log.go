package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sleeponit/sleep-on-it/internal/cli"
	"github.com/sleeponit/sleep-on-it/internal/model"
)

func logCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log <title>",
		Short: "Log a purchase impulse instead of acting on it",
		Long: `Log a purchase impulse. The impulse starts out pending; resolve it later
with "sleepon resolve" once you've slept on it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			title := strings.Join(args, " ")

			categoryFlag, _ := cmd.Flags().GetString("category")
			category, err := parseCategory(categoryFlag)
			if err != nil {
				return err
			}

			var price *float64
			if cmd.Flags().Changed("price") {
				p, _ := cmd.Flags().GetFloat64("price")
				if p < 0 {
					return fmt.Errorf("price must be non-negative, got %.2f", p)
				}
				price = &p
			}

			impulse := model.Impulse{
				ID:        uuid.New().String(),
				Title:     title,
				Category:  category,
				Price:     price,
				Status:    model.StatusPending,
				CreatedAt: time.Now(),
			}
			if err := impulse.Validate(); err != nil {
				return fmt.Errorf("invalid impulse: %w", err)
			}

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := db.SaveImpulses(ctx, []model.Impulse{impulse}); err != nil {
				return fmt.Errorf("failed to save impulse: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Logged %q (%s). Sleep on it!", title, impulse.ID[:8])))

			// Warn right away if this looks like a known habit.
			warnAboutHabits(ctx, db, impulse)

			return nil
		},
	}

	cmd.Flags().StringP("category", "c", "", fmt.Sprintf("impulse category (%s)", categoryList()))
	cmd.Flags().Float64P("price", "p", 0, "expected price")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}
