package availability

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	// ErrUnauthenticated возвращается, когда не передан пользователь
	ErrUnauthenticated = fmt.Errorf("availability: user identity is required: %w", domain.ErrAuth)

	// ErrAccessDenied возвращается, когда пользователь не мастер
	ErrAccessDenied = fmt.Errorf("availability: access denied: %w", domain.ErrAuth)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("availability: invalid input data: %w", domain.ErrValidation)

	// ErrOverlappingRanges возвращается, когда интервалы одного дня пересекаются
	ErrOverlappingRanges = fmt.Errorf("availability: time ranges overlap: %w", domain.ErrValidation)

	// ErrBlockoutNotFound возвращается, когда закрытый день не найден
	ErrBlockoutNotFound = fmt.Errorf("availability: blockout not found: %w", domain.ErrNotFound)

	// ErrBlockoutExists возвращается, когда день уже закрыт
	ErrBlockoutExists = fmt.Errorf("availability: date already blocked: %w", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("availability: internal error: %w", domain.ErrBackend)
)
