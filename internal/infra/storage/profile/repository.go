package profile

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

var columns = []string{"id", "email", "name", "phone", "role", "created_at", "updated_at"}

// Repository профили пользователей. Сами пользователи создаются провайдером аутентификации.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает профиль по ID пользователя
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	profile, err := scanProfile(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan profile: %w", ErrScanRow, err)
	}

	return profile, nil
}

// GetRole роль пользователя
func (r *Repository) GetRole(ctx context.Context, id string) (domain.Role, error) {
	profile, err := r.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return profile.Role, nil
}

// ListByRole профили с указанной ролью по имени
func (r *Repository) ListByRole(ctx context.Context, role domain.Role) ([]*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("profiles").
		Where(squirrel.Eq{"role": role}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRole - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "ListByRole", query, args)
}

// List все профили, отсортированные по роли и имени
func (r *Repository) List(ctx context.Context) ([]*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("profiles").
		OrderBy("role ASC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "List", query, args)
}

// UpdateRole меняет роль пользователя
func (r *Repository) UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("profiles").
		Set("role", role).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateRole - build update query: %v", ErrBuildQuery, err)
	}

	profile, err := scanProfile(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateRole - execute update: %w", ErrExecQuery, err)
	}

	return profile, nil
}

func (r *Repository) query(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) ([]*domain.Profile, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	profiles := make([]*domain.Profile, 0)
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return profiles, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var profile domain.Profile
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&profile.ID,
		&profile.Email,
		&profile.Name,
		&profile.Phone,
		&profile.Role,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	profile.CreatedAt = createdAt.Time
	profile.UpdatedAt = updatedAt.Time
	return &profile, nil
}
