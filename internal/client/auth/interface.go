package auth

import (
	"context"
	"time"

	pkgapi "github.com/pwnflow/pwnflow-cli/pkg/api"

	"github.com/pwnflow/pwnflow-cli/internal/client/storage"
)

//go:generate moq -out service_mock.go . Service

// Service defines the main interface for authentication operations.
// Сервис отвечает за регистрацию, логин и локальную сессию: токен хранится
// в BoltDB зашифрованным ключом, деривированным из локальной passphrase.
type Service interface {
	// Register регистрирует нового пользователя
	Register(ctx context.Context, username, email, password string) (*pkgapi.User, error)

	// Login выполняет аутентификацию и сохраняет сессию локально.
	// Токен шифруется перед записью в хранилище.
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// Restore восстанавливает сессию из локального хранилища и устанавливает
	// токен в API клиент. Возвращает расшифрованные данные сессии.
	Restore(ctx context.Context) (*storage.AuthData, error)

	// Logout удаляет локальные данные сессии
	Logout(ctx context.Context) error

	// ForceLogout завершает сессию после отказа сервера в авторизации (401)
	ForceLogout(ctx context.Context)

	// Status возвращает состояние текущей сессии
	Status(ctx context.Context) (*SessionStatus, error)
}

// LoginResult содержит результат авторизации
type LoginResult struct {
	ExpiresAt   time.Time // срок действия access токена
	Username    string    // username
	UserID      string    // UUID пользователя из sub claim токена
	AccessToken string    // JWT access token
}

// SessionStatus описывает текущую локальную сессию
type SessionStatus struct {
	ExpiresAt     time.Time // срок действия токена
	Username      string    // username
	ServerURL     string    // сервер, с которым была установлена сессия
	Authenticated bool      // есть ли действующая сессия
}
