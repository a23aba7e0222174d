package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username string `json:"username"` // username пользователя
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль (минимум 8 символов)
}

// User представляет пользователя, как его возвращает сервер
type User struct {
	ID       string `json:"id"`        // UUID пользователя
	Username string `json:"username"`  // username пользователя
	Email    string `json:"email"`     // email пользователя
	IsActive bool   `json:"is_active"` // активна ли учетная запись
}

// TokenResponse представляет ответ с токеном доступа.
// Сервер использует OAuth2 password flow: токен приходит один,
// refresh токенов нет.
type TokenResponse struct {
	AccessToken string `json:"access_token"` // JWT access token
	TokenType   string `json:"token_type"`   // всегда "bearer"
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Detail string `json:"detail"` // описание ошибки от сервера
}
