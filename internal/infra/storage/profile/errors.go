package profile

import "errors"

var (
	// ErrProfileNotFound возвращается, когда профиль не найден
	ErrProfileNotFound = errors.New("profile.repository: profile not found")

	ErrBuildQuery = errors.New("profile.repository: failed to build query")
	ErrExecQuery  = errors.New("profile.repository: failed to execute query")
	ErrScanRow    = errors.New("profile.repository: failed to scan row")
)
