package domain

import "errors"

// Виды ошибок. Ошибки use case оборачивают ровно один из них,
// вызывающий код различает их через errors.Is.
var (
	// ErrValidation некорректный ввод, исправляется вызывающим
	ErrValidation = errors.New("validation error")

	// ErrConflict слот уже занят или запись нарушает уникальность
	ErrConflict = errors.New("conflict")

	// ErrBackend временный сбой инфраструктуры, операцию можно повторить
	ErrBackend = errors.New("backend error")

	// ErrAuth нет идентичности пользователя или недостаточно прав
	ErrAuth = errors.New("auth error")

	// ErrNotFound запрошенная сущность не существует
	ErrNotFound = errors.New("not found")
)
