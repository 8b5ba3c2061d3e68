package userservice

// User модель пользователя из UserService (внешний сервис аккаунтов)
// Сервис аккаунтов - единственный владелец данных о пользователях и ролях;
// сюда приходит уже разрешённая идентичность, без учётных данных
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"` // ADMIN | STAFF | CUSTOMER
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
