package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sleeponit/sleep-on-it/internal/common"
	"github.com/sleeponit/sleep-on-it/internal/model"
	"github.com/sleeponit/sleep-on-it/internal/service"
)

// SaveImpulses saves multiple impulses to the database.
func (s *SQLiteStorage) SaveImpulses(ctx context.Context, impulses []model.Impulse) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateImpulses(impulses); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO impulses (
			id, title, category, price, status, executed_at, final_feeling, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, imp := range impulses {
		var feeling *string
		if imp.FinalFeeling != nil {
			f := string(*imp.FinalFeeling)
			feeling = &f
		}

		_, err = stmt.ExecContext(ctx,
			imp.ID,
			imp.Title,
			string(imp.Category),
			imp.Price,
			string(imp.Status),
			imp.ExecutedAt,
			feeling,
			imp.CreatedAt,
		)
		if err != nil {
			if strings.Contains(err.Error(), "UNIQUE constraint failed") {
				return fmt.Errorf("%w: impulse %s", common.ErrDuplicateEntry, imp.ID)
			}
			return fmt.Errorf("failed to save impulse %s: %w", imp.ID, err)
		}
	}

	return tx.Commit()
}

// GetImpulseByID retrieves a single impulse.
func (s *SQLiteStorage) GetImpulseByID(ctx context.Context, id string) (*model.Impulse, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, category, price, status, executed_at, final_feeling, created_at
		FROM impulses WHERE id = ?
	`, id)

	imp, err := scanImpulse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: impulse %s", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get impulse: %w", err)
	}
	return imp, nil
}

// ListImpulses returns impulses matching the filter, oldest first, which
// is the order the pattern engine expects.
func (s *SQLiteStorage) ListImpulses(ctx context.Context, filter service.ImpulseFilter) ([]model.Impulse, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, title, category, price, status, executed_at, final_feeling, created_at
		FROM impulses WHERE 1=1`
	var args []any

	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, string(filter.Status))
	}
	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, string(filter.Category))
	}
	if filter.StartDate != nil {
		query += " AND created_at >= ?"
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		query += " AND created_at <= ?"
		args = append(args, *filter.EndDate)
	}
	query += " ORDER BY created_at ASC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list impulses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var impulses []model.Impulse
	for rows.Next() {
		imp, scanErr := scanImpulse(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan impulse: %w", scanErr)
		}
		impulses = append(impulses, *imp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate impulses: %w", err)
	}

	return impulses, nil
}

// ResolveImpulse marks a pending impulse as cancelled or executed.
// Executed resolutions record the execution time and optional feeling;
// cancellations may carry a feeling but never an execution time.
func (s *SQLiteStorage) ResolveImpulse(ctx context.Context, id string, status model.ImpulseStatus, feeling *model.Feeling, resolvedAt time.Time) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	if status != model.StatusCancelled && status != model.StatusExecuted {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	if feeling != nil && !feeling.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidFeeling, *feeling)
	}
	if err := validateTime(resolvedAt, "resolvedAt"); err != nil {
		return err
	}

	current, err := s.GetImpulseByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Status != model.StatusPending {
		return fmt.Errorf("%w: impulse %s is %s", common.ErrAlreadyResolved, id, current.Status)
	}

	var executedAt *time.Time
	if status == model.StatusExecuted {
		executedAt = &resolvedAt
	}
	var feelingStr *string
	if feeling != nil {
		f := string(*feeling)
		feelingStr = &f
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE impulses SET status = ?, executed_at = ?, final_feeling = ?
		WHERE id = ?
	`, string(status), executedAt, feelingStr, id)
	if err != nil {
		return fmt.Errorf("failed to resolve impulse: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: impulse %s", common.ErrNotFound, id)
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanImpulse(row scanner) (*model.Impulse, error) {
	var (
		imp        model.Impulse
		category   string
		status     string
		price      sql.NullFloat64
		executedAt sql.NullTime
		feeling    sql.NullString
	)

	err := row.Scan(&imp.ID, &imp.Title, &category, &price, &status, &executedAt, &feeling, &imp.CreatedAt)
	if err != nil {
		return nil, err
	}

	imp.Category = model.Category(category)
	imp.Status = model.ImpulseStatus(status)
	if price.Valid {
		p := price.Float64
		imp.Price = &p
	}
	if executedAt.Valid {
		t := executedAt.Time
		imp.ExecutedAt = &t
	}
	if feeling.Valid {
		f := model.Feeling(feeling.String)
		imp.FinalFeeling = &f
	}

	return &imp, nil
}
