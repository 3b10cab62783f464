package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sleeponit/sleep-on-it/internal/model"
	"github.com/sleeponit/sleep-on-it/internal/service"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged impulses",
		Long:  `List logged impulses with their status, category, price, and outcome.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			db, cleanup, err := getDatabase(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var filter service.ImpulseFilter
			if statusFlag, _ := cmd.Flags().GetString("status"); statusFlag != "" {
				status := model.ImpulseStatus(statusFlag)
				if !status.Valid() {
					return fmt.Errorf("unknown status %q (valid: pending, cancelled, executed)", statusFlag)
				}
				filter.Status = status
			}
			if categoryFlag, _ := cmd.Flags().GetString("category"); categoryFlag != "" {
				category, catErr := parseCategory(categoryFlag)
				if catErr != nil {
					return catErr
				}
				filter.Category = category
			}
			filter.Limit, _ = cmd.Flags().GetInt("limit")

			impulses, err := db.ListImpulses(ctx, filter)
			if err != nil {
				return fmt.Errorf("failed to list impulses: %w", err)
			}

			if len(impulses) == 0 {
				slog.Info("No impulses found")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tPRICE\tSTATUS\tFEELING\tLOGGED")
			_, _ = fmt.Fprintln(w, "──\t─────\t────────\t─────\t──────\t───────\t──────")

			for _, imp := range impulses {
				feeling := "-"
				if imp.FinalFeeling != nil {
					feeling = string(*imp.FinalFeeling)
				}

				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					imp.ID[:8],
					truncateString(imp.Title, 30),
					imp.Category,
					formatPrice(imp.Price),
					imp.Status,
					feeling,
					imp.CreatedAt.Format("2006-01-02 15:04"))
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringP("status", "s", "", "filter by status (pending, cancelled, executed)")
	cmd.Flags().StringP("category", "c", "", "filter by category")
	cmd.Flags().IntP("limit", "n", 0, "limit the number of results")
	return cmd
}
