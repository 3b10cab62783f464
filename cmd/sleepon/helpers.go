package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sleeponit/sleep-on-it/internal/config"
	"github.com/sleeponit/sleep-on-it/internal/model"
	"github.com/sleeponit/sleep-on-it/internal/service"
	"github.com/sleeponit/sleep-on-it/internal/storage"
)

// getDatabase opens the configured database, brings the schema current,
// and returns it along with a cleanup function.
func getDatabase(ctx context.Context) (service.Storage, func(), error) {
	dbPath := config.DatabasePath()

	db, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	cleanup := func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Warn("Failed to close database", "error", closeErr)
		}
	}

	if err := db.Migrate(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, cleanup, nil
}

// parseCategory maps user input onto the closed category set.
func parseCategory(input string) (model.Category, error) {
	category := model.Category(strings.ToUpper(strings.TrimSpace(input)))
	if !category.Valid() {
		return "", fmt.Errorf("unknown category %q (valid: %s)", input, categoryList())
	}
	return category, nil
}

func categoryList() string {
	names := make([]string, 0, len(model.Categories))
	for _, c := range model.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

// truncateString shortens a string for table display.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// formatPrice renders an optional price for table display.
func formatPrice(price *float64) string {
	if price == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *price)
}
