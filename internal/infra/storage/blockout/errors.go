package blockout

import "errors"

var (
	// ErrBlockoutNotFound возвращается, когда блокировка не найдена
	ErrBlockoutNotFound = errors.New("blockout.repository: blockout not found")

	// ErrDuplicateBlockout день уже закрыт
	ErrDuplicateBlockout = errors.New("blockout.repository: date already blocked")

	ErrBuildQuery = errors.New("blockout.repository: failed to build query")
	ErrExecQuery  = errors.New("blockout.repository: failed to execute query")
	ErrScanRow    = errors.New("blockout.repository: failed to scan row")
)
