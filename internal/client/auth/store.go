package auth

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/pwnflow/pwnflow-cli/internal/client/storage"
	"github.com/pwnflow/pwnflow-cli/internal/crypto"
)

// AuthStore defines interface for storing authentication data with encryption
// This layer is responsible for encrypting/decrypting the token before saving to storage
type AuthStore interface {
	// SaveAuth encrypts and saves authentication data
	SaveAuth(ctx context.Context, auth *storage.AuthData) error

	// GetAuth retrieves and decrypts authentication data
	GetAuth(ctx context.Context) (*storage.AuthData, error)

	// DeleteAuth removes stored authentication data
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated checks if valid authentication exists
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthService implements AuthStore interface and provides encryption layer
// between business logic and storage. It encrypts the access token before
// saving and decrypts it when retrieving.
type AuthService struct {
	storage       storage.AuthStorage
	encryptionKey []byte
}

// Compile-time check that AuthService implements AuthStore
var _ AuthStore = (*AuthService)(nil)

// NewAuthService creates a new AuthService with encryption layer
// encryptionKey must be exactly 32 bytes (derived from the local passphrase)
func NewAuthService(authStorage storage.AuthStorage, encryptionKey []byte) *AuthService {
	if len(encryptionKey) != crypto.KeyLen {
		panic(fmt.Sprintf("encryption key must be %d bytes, got %d", crypto.KeyLen, len(encryptionKey)))
	}
	return &AuthService{
		storage:       authStorage,
		encryptionKey: encryptionKey,
	}
}

// SaveAuth сохраняет незашифрованные auth данные,
// сервис сам зашифрует токен и передаст в хранилище
func (s *AuthService) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	if auth == nil {
		return fmt.Errorf("auth data is nil")
	}

	// Шифруем токен
	encryptedToken, err := crypto.Encrypt([]byte(auth.AccessToken), s.encryptionKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}

	// Кодируем шифрованный токен в base64
	authCopy := *auth // копируем структуру, чтобы не менять входящую
	authCopy.AccessToken = base64.StdEncoding.EncodeToString(encryptedToken)

	// Сохраняем в storage (уже с зашифрованным токеном)
	return s.storage.SaveAuth(ctx, &authCopy)
}

// GetAuth загружает данные из storage и расшифровывает токен
func (s *AuthService) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	storedAuth, err := s.storage.GetAuth(ctx)
	if err != nil {
		return nil, err
	}

	// Декодируем base64 из хранилища
	encryptedTokenBytes, err := base64.StdEncoding.DecodeString(storedAuth.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to base64 decode access token: %w", err)
	}

	// Дешифруем
	tokenBytes, err := crypto.Decrypt(encryptedTokenBytes, s.encryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt access token: %w", err)
	}

	// Копируем все в новую структуру, возвращаем с расшифрованным токеном
	auth := *storedAuth
	auth.AccessToken = string(tokenBytes)

	return &auth, nil
}

// DeleteAuth удаляет данные
func (s *AuthService) DeleteAuth(ctx context.Context) error {
	return s.storage.DeleteAuth(ctx)
}

// IsAuthenticated проверяет валидность сохраненных данных по сроку действия токена
func (s *AuthService) IsAuthenticated(ctx context.Context) (bool, error) {
	return s.storage.IsAuthenticated(ctx)
}
