package blockout

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/pgerr"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

const table = "schedule_blockouts"

// Repository закрытые мастером дни
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create закрывает день для записи
func (r *Repository) Create(ctx context.Context, blockout *domain.Blockout) (*domain.Blockout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("professional_id", "blockout_date", "reason").
		Values(blockout.ProfessionalID, blockout.Date, blockout.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&blockout.ID, &createdAt)
	if pgerr.IsUniqueViolation(err) {
		return nil, fmt.Errorf("%w: Create - %w", ErrDuplicateBlockout, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	blockout.CreatedAt = createdAt.Time
	return blockout, nil
}

// GetByProfessional блокировки мастера в периоде [from, to]. Нулевые границы не ограничивают выборку.
func (r *Repository) GetByProfessional(ctx context.Context, professionalID string, from, to time.Time) ([]*domain.Blockout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "professional_id", "blockout_date", "reason", "created_at").
		From(table).
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("blockout_date ASC")

	if !from.IsZero() {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"blockout_date": from})
	}
	if !to.IsZero() {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"blockout_date": to})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	blockouts := make([]*domain.Blockout, 0)
	for rows.Next() {
		var b domain.Blockout
		var createdAt sql.NullTime
		if err := rows.Scan(&b.ID, &b.ProfessionalID, &b.Date, &b.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: GetByProfessional - scan row: %w", ErrScanRow, err)
		}
		b.Date = domain.DateOf(b.Date)
		b.CreatedAt = createdAt.Time
		blockouts = append(blockouts, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByProfessional - rows error: %w", ErrScanRow, err)
	}

	return blockouts, nil
}

// Delete удаляет блокировку мастера
func (r *Repository) Delete(ctx context.Context, professionalID string, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBlockoutNotFound
	}

	return nil
}
