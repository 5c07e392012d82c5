package availability

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило не найдено
	ErrRuleNotFound = errors.New("availability.repository: rule not found")

	// ErrOverlappingRules возвращается, когда интервалы правил одного дня пересекаются
	ErrOverlappingRules = errors.New("availability.repository: overlapping rules for weekday")

	ErrBuildQuery = errors.New("availability.repository: failed to build query")
	ErrExecQuery  = errors.New("availability.repository: failed to execute query")
	ErrScanRow    = errors.New("availability.repository: failed to scan row")
)
