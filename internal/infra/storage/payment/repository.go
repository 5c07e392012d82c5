package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/pgerr"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

const table = "payments"

var columns = []string{
	"id",
	"appointment_id",
	"amount",
	"status",
	"payment_method",
	"external_id",
	"external_reference",
	"pix_code",
	"expires_at",
	"created_at",
	"updated_at",
}

// Repository предоплаты за записи
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет платеж. На одну запись допускается один платеж.
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"appointment_id",
			"amount",
			"status",
			"payment_method",
			"external_id",
			"external_reference",
			"pix_code",
			"expires_at",
		).
		Values(
			payment.AppointmentID,
			payment.Amount,
			payment.Status,
			payment.Method,
			payment.ExternalID,
			payment.ExternalReference,
			payment.PixCode,
			payment.ExpiresAt,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&payment.ID, &createdAt, &updatedAt)
	if pgerr.IsUniqueViolation(err) {
		return nil, fmt.Errorf("%w: Create - %w", ErrPaymentExists, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	payment.CreatedAt = createdAt.Time
	payment.UpdatedAt = updatedAt.Time
	return payment, nil
}

// GetByID платеж по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByAppointmentID платеж записи
func (r *Repository) GetByAppointmentID(ctx context.Context, appointmentID int64) (*domain.Payment, error) {
	return r.getOne(ctx, "GetByAppointmentID", squirrel.Eq{"appointment_id": appointmentID})
}

// GetByExternalID платеж по идентификатору в платежном шлюзе
func (r *Repository) GetByExternalID(ctx context.Context, externalID string) (*domain.Payment, error) {
	return r.getOne(ctx, "GetByExternalID", squirrel.Eq{"external_id": externalID})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(where)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	payment, err := scanPayment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan payment: %w", ErrScanRow, op, err)
	}

	return payment, nil
}

// UpdateStatus обновляет статус платежа
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

// SaveNotification пишет уведомление шлюза в журнал
func (r *Repository) SaveNotification(ctx context.Context, notification *domain.PaymentNotification) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payment_notifications").
		Columns("payment_id", "external_payment_id", "status", "raw_data").
		Values(notification.PaymentID, notification.ExternalPaymentID, notification.Status, string(notification.RawData)).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SaveNotification - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&notification.ID, &createdAt); err != nil {
		return fmt.Errorf("%w: SaveNotification - execute insert: %w", ErrExecQuery, err)
	}

	notification.CreatedAt = createdAt.Time
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var payment domain.Payment
	var externalID, externalReference, pixCode sql.NullString
	var expiresAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&payment.ID,
		&payment.AppointmentID,
		&payment.Amount,
		&payment.Status,
		&payment.Method,
		&externalID,
		&externalReference,
		&pixCode,
		&expiresAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	payment.ExternalID = externalID.String
	payment.ExternalReference = externalReference.String
	payment.PixCode = pixCode.String
	if expiresAt.Valid {
		t := expiresAt.Time
		payment.ExpiresAt = &t
	}
	payment.CreatedAt = createdAt.Time
	payment.UpdatedAt = updatedAt.Time
	return &payment, nil
}
