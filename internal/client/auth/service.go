package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pwnflow/pwnflow-cli/internal/client/api"
	"github.com/pwnflow/pwnflow-cli/internal/client/storage"
	"github.com/pwnflow/pwnflow-cli/internal/crypto"
	"github.com/pwnflow/pwnflow-cli/internal/validation"
	pkgapi "github.com/pwnflow/pwnflow-cli/pkg/api"
)

// service реализует Service поверх API клиента и локального хранилища
type service struct {
	apiClient  *api.Client
	storage    storage.AuthStorage
	logger     *slog.Logger
	passphrase string
}

// Compile-time check
var _ Service = (*service)(nil)

// NewService создает новый сервис авторизации.
// passphrase используется для деривации ключа шифрования токена в хранилище.
func NewService(apiClient *api.Client, authStorage storage.AuthStorage, passphrase string, logger *slog.Logger) Service {
	return &service{
		apiClient:  apiClient,
		storage:    authStorage,
		passphrase: passphrase,
		logger:     logger,
	}
}

// Register регистрирует нового пользователя
func (s *service) Register(ctx context.Context, username, email, password string) (*pkgapi.User, error) {
	// Валидация входных данных
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	req := pkgapi.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	}

	user, err := s.apiClient.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("user registered", "username", user.Username, "user_id", user.ID)
	return user, nil
}

// Login выполняет аутентификацию и сохраняет сессию локально
func (s *service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	// Валидация username
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	// 1. Запрашиваем токен у сервера
	resp, err := s.apiClient.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	// 2. Читаем срок действия и ID пользователя из claims токена
	expiresAt, err := TokenExpiry(resp.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token expiry: %w", err)
	}
	userID, err := TokenSubject(resp.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token subject: %w", err)
	}

	// 3. Генерируем соль и деривируем ключ шифрования хранилища
	saltBase64, err := crypto.GenerateSaltBase64()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	key, err := crypto.DeriveStorageKeyFromBase64Salt(s.passphrase, saltBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to derive storage key: %w", err)
	}

	// 4. Сохраняем сессию: токен шифруется слоем AuthService
	authData := &storage.AuthData{
		Username:    username,
		UserID:      userID,
		AccessToken: resp.AccessToken,
		ServerURL:   s.apiClient.BaseURL(),
		PublicSalt:  saltBase64,
		ExpiresAt:   expiresAt.Unix(),
	}
	if err := NewAuthService(s.storage, key).SaveAuth(ctx, authData); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	// 5. Устанавливаем токен для последующих запросов
	s.apiClient.SetToken(resp.AccessToken)

	s.logger.Info("login successful", "username", username, "expires_at", expiresAt)

	return &LoginResult{
		AccessToken: resp.AccessToken,
		Username:    username,
		UserID:      userID,
		ExpiresAt:   expiresAt,
	}, nil
}

// Restore восстанавливает сессию из локального хранилища
func (s *service) Restore(ctx context.Context) (*storage.AuthData, error) {
	// 1. Читаем сырые данные: соль хранится открыто
	stored, err := s.storage.GetAuth(ctx)
	if err != nil {
		return nil, err
	}

	// 2. Деривируем ключ и расшифровываем токен
	key, err := crypto.DeriveStorageKeyFromBase64Salt(s.passphrase, stored.PublicSalt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive storage key: %w", err)
	}
	authData, err := NewAuthService(s.storage, key).GetAuth(ctx)
	if err != nil {
		return nil, err
	}

	// 3. Просроченная сессия бесполезна - ведем себя как при ее отсутствии
	if authData.ExpiresAt > 0 && time.Now().Unix() >= authData.ExpiresAt {
		s.logger.Warn("stored session expired", "username", authData.Username)
		return nil, storage.ErrAuthNotFound
	}

	s.apiClient.SetToken(authData.AccessToken)
	return authData, nil
}

// Logout удаляет локальные данные сессии.
// Сервер не хранит состояние сессий, поэтому уведомлять его не нужно.
func (s *service) Logout(ctx context.Context) error {
	if err := s.storage.DeleteAuth(ctx); err != nil {
		if err == storage.ErrAuthNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}
	s.apiClient.ClearToken()
	s.logger.Info("logged out")
	return nil
}

// ForceLogout завершает сессию после 401 от сервера
func (s *service) ForceLogout(ctx context.Context) {
	s.logger.Warn("server rejected token, dropping local session")
	if err := s.storage.DeleteAuth(ctx); err != nil && err != storage.ErrAuthNotFound {
		s.logger.Error("failed to delete local auth data", "error", err)
	}
	s.apiClient.ClearToken()
}

// Status возвращает состояние текущей сессии
func (s *service) Status(ctx context.Context) (*SessionStatus, error) {
	stored, err := s.storage.GetAuth(ctx)
	if err != nil {
		if err == storage.ErrAuthNotFound {
			return &SessionStatus{Authenticated: false}, nil
		}
		return nil, err
	}

	ok, err := s.storage.IsAuthenticated(ctx)
	if err != nil {
		return nil, err
	}

	return &SessionStatus{
		Authenticated: ok,
		Username:      stored.Username,
		ServerURL:     stored.ServerURL,
		ExpiresAt:     time.Unix(stored.ExpiresAt, 0),
	}, nil
}
