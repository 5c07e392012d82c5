package domain

import "time"

// Role роль пользователя
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleProfessional Role = "professional"
	RoleClient       Role = "client"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleProfessional, RoleClient:
		return true
	}
	return false
}

// Profile профиль пользователя. ID выдает внешний провайдер аутентификации.
type Profile struct {
	ID        string
	Email     string
	Name      string
	Phone     *string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Identity аутентифицированный пользователь, передается в use case явно
type Identity struct {
	UserID string
	Role   Role
}

func (i Identity) IsZero() bool {
	return i.UserID == ""
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

func (i Identity) IsProfessional() bool {
	return i.Role == RoleProfessional
}
