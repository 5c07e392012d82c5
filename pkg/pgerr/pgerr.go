// Package pgerr классифицирует ошибки Postgres (lib/pq) по SQLSTATE.
package pgerr

import (
	"database/sql/driver"
	"errors"

	"github.com/lib/pq"
)

const (
	CodeUniqueViolation      pq.ErrorCode = "23505"
	CodeExclusionViolation   pq.ErrorCode = "23P01"
	CodeSerializationFailure pq.ErrorCode = "40001"
	CodeDeadlockDetected     pq.ErrorCode = "40P01"
	CodeAdminShutdown        pq.ErrorCode = "57P01"

	classConnectionException pq.ErrorClass = "08"
)

// Code возвращает SQLSTATE из цепочки ошибок
func Code(err error) (pq.ErrorCode, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code, true
	}
	return "", false
}

// IsUniqueViolation нарушение уникального индекса
func IsUniqueViolation(err error) bool {
	code, ok := Code(err)
	return ok && code == CodeUniqueViolation
}

// IsExclusionViolation нарушение exclusion constraint (пересечение интервалов)
func IsExclusionViolation(err error) bool {
	code, ok := Code(err)
	return ok && code == CodeExclusionViolation
}

// IsConflict любое нарушение уникальности записи
func IsConflict(err error) bool {
	return IsUniqueViolation(err) || IsExclusionViolation(err)
}

// IsSerializationFailure конфликт сериализуемой транзакции
func IsSerializationFailure(err error) bool {
	code, ok := Code(err)
	return ok && code == CodeSerializationFailure
}

// IsTransient ошибка, после которой операцию можно безопасно повторить целиком
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	code, ok := Code(err)
	if !ok {
		return false
	}

	switch code {
	case CodeSerializationFailure, CodeDeadlockDetected, CodeAdminShutdown:
		return true
	}
	return code.Class() == classConnectionException
}
