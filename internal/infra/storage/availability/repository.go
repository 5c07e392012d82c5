package availability

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/pgerr"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

const table = "professional_availability"

var columns = []string{
	"id",
	"professional_id",
	"day_of_week",
	"start_time",
	"end_time",
	"is_available",
	"created_at",
	"updated_at",
}

// Repository недельные правила рабочего времени мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProfessional все правила мастера, по дню недели и времени начала
func (r *Repository) GetByProfessional(ctx context.Context, professionalID string) ([]*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("day_of_week ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.AvailabilityRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByProfessional - scan row: %w", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - rows error: %w", ErrScanRow, err)
	}

	return rules, nil
}

// ReplaceDay заменяет все правила мастера на день недели.
// Должен вызываться внутри транзакции: удаление и вставка выполняются вместе.
// Пустой ranges сохраняет день как нерабочий (одно правило с is_available = false).
func (r *Repository) ReplaceDay(
	ctx context.Context,
	professionalID string,
	weekday time.Weekday,
	ranges []domain.TimeRange,
) ([]*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"day_of_week": int(weekday)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceDay - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceDay - execute delete: %w", ErrExecQuery, err)
	}

	insert := psqlbuilder.Insert(table).
		Columns("professional_id", "day_of_week", "start_time", "end_time", "is_available").
		Suffix("RETURNING " + strings.Join(columns, ", "))

	if len(ranges) == 0 {
		insert = insert.Values(professionalID, int(weekday), dayStart, dayStart, false)
	}
	for _, tr := range ranges {
		insert = insert.Values(professionalID, int(weekday), tr.Start, tr.End, true)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceDay - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if pgerr.IsConflict(err) {
		return nil, fmt.Errorf("%w: ReplaceDay - %w", ErrOverlappingRules, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceDay - execute insert: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.AvailabilityRule, 0, len(ranges))
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ReplaceDay - scan row: %w", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		if pgerr.IsConflict(err) {
			return nil, fmt.Errorf("%w: ReplaceDay - %w", ErrOverlappingRules, err)
		}
		return nil, fmt.Errorf("%w: ReplaceDay - rows error: %w", ErrScanRow, err)
	}

	return rules, nil
}

const dayStart = "00:00"

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRule(row rowScanner) (*domain.AvailabilityRule, error) {
	var rule domain.AvailabilityRule
	var weekday int
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rule.ID,
		&rule.ProfessionalID,
		&weekday,
		&rule.StartTime,
		&rule.EndTime,
		&rule.IsAvailable,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rule.Weekday = time.Weekday(weekday)
	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time
	return &rule, nil
}
