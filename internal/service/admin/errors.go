package admin

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	// ErrUnauthenticated возвращается, когда не передан пользователь
	ErrUnauthenticated = fmt.Errorf("admin: user identity is required: %w", domain.ErrAuth)

	// ErrAccessDenied возвращается, когда пользователь не администратор
	ErrAccessDenied = fmt.Errorf("admin: access denied: %w", domain.ErrAuth)

	// ErrUserNotFound возвращается, когда профиль не найден
	ErrUserNotFound = fmt.Errorf("admin: user not found: %w", domain.ErrNotFound)

	// ErrInvalidRole возвращается при неизвестной роли
	ErrInvalidRole = fmt.Errorf("admin: invalid role: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("admin: internal error: %w", domain.ErrBackend)
)
