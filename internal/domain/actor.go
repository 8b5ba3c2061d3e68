package domain

// UserRole роль пользователя в системе
// Роль определяется внешним сервисом аккаунтов и приходит в запросе уже разрешённой
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleStaff    UserRole = "STAFF"
	RoleCustomer UserRole = "CUSTOMER"
)

// ValidUserRole возвращает true для известной роли
func ValidUserRole(r UserRole) bool {
	return r == RoleAdmin || r == RoleStaff || r == RoleCustomer
}

// Actor аутентифицированный инициатор запроса
// Сервис не хранит сессий: идентичность и роль передаются в каждый вызов явно
type Actor struct {
	UserID int64
	Role   UserRole
}

// IsAdmin returns true if the actor has the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// IsStaff returns true if the actor has the staff role
func (a Actor) IsStaff() bool {
	return a.Role == RoleStaff
}

// IsCustomer returns true if the actor has the customer role
func (a Actor) IsCustomer() bool {
	return a.Role == RoleCustomer
}
