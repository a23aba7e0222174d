package auth

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwnflow/pwnflow-cli/internal/client/storage"
)

// mockAuthStorage implements storage.AuthStorage for testing
type mockAuthStorage struct {
	data        *storage.AuthData
	saveErr     error
	getErr      error
	deleteErr   error
	isAuthErr   error
	isAuthValue bool
}

func (m *mockAuthStorage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	// Сохраняем копию данных
	copied := *auth
	m.data = &copied
	return nil
}

func (m *mockAuthStorage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.data == nil {
		return nil, storage.ErrAuthNotFound
	}
	// Возвращаем копию
	copied := *m.data
	return &copied, nil
}

func (m *mockAuthStorage) DeleteAuth(ctx context.Context) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.data = nil
	return nil
}

func (m *mockAuthStorage) IsAuthenticated(ctx context.Context) (bool, error) {
	if m.isAuthErr != nil {
		return false, m.isAuthErr
	}
	return m.isAuthValue, nil
}

func TestNewAuthService(t *testing.T) {
	mockStorage := &mockAuthStorage{}
	encryptionKey := make([]byte, 32) // 32 bytes key

	authService := NewAuthService(mockStorage, encryptionKey)

	assert.NotNil(t, authService)
	assert.Equal(t, mockStorage, authService.storage)
	assert.Equal(t, encryptionKey, authService.encryptionKey)
}

func TestNewAuthService_PanicOnInvalidKey(t *testing.T) {
	mockStorage := &mockAuthStorage{}
	invalidKey := make([]byte, 16) // Wrong size

	assert.Panics(t, func() {
		NewAuthService(mockStorage, invalidKey)
	}, "Should panic with invalid key size")
}

func TestAuthService_SaveAuth(t *testing.T) {
	tests := []struct {
		auth    *storage.AuthData
		name    string
		wantErr bool
	}{
		{
			name: "successful save",
			auth: &storage.AuthData{
				Username:    "testuser",
				UserID:      "user-123",
				AccessToken: "plaintext-access-token",
				ServerURL:   "https://pwnflow.example.com",
				PublicSalt:  "salt123",
				ExpiresAt:   1234567890,
			},
			wantErr: false,
		},
		{
			name:    "nil auth data",
			auth:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStorage := &mockAuthStorage{}
			encryptionKey := make([]byte, 32)
			authService := NewAuthService(mockStorage, encryptionKey)

			err := authService.SaveAuth(context.Background(), tt.auth)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, mockStorage.data)

			// В хранилище токен зашифрован и закодирован в base64
			assert.NotEqual(t, tt.auth.AccessToken, mockStorage.data.AccessToken)
			_, err = base64.StdEncoding.DecodeString(mockStorage.data.AccessToken)
			assert.NoError(t, err)

			// Остальные поля не шифруются
			assert.Equal(t, tt.auth.Username, mockStorage.data.Username)
			assert.Equal(t, tt.auth.PublicSalt, mockStorage.data.PublicSalt)
			assert.Equal(t, tt.auth.ExpiresAt, mockStorage.data.ExpiresAt)

			// Входящая структура не изменена
			assert.Equal(t, "plaintext-access-token", tt.auth.AccessToken)
		})
	}
}

func TestAuthService_EncryptionDecryption_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mockStorage := &mockAuthStorage{}
	encryptionKey := make([]byte, 32)
	for i := range encryptionKey {
		encryptionKey[i] = byte(i)
	}
	authService := NewAuthService(mockStorage, encryptionKey)

	original := &storage.AuthData{
		Username:    "testuser",
		UserID:      "user-123",
		AccessToken: "secret-jwt-token",
		ServerURL:   "https://pwnflow.example.com",
		PublicSalt:  "salt123",
		ExpiresAt:   1234567890,
	}

	require.NoError(t, authService.SaveAuth(ctx, original))

	// GetAuth возвращает расшифрованный токен
	got, err := authService.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, original.AccessToken, got.AccessToken)
	assert.Equal(t, original.Username, got.Username)
	assert.Equal(t, original.UserID, got.UserID)
	assert.Equal(t, original.ServerURL, got.ServerURL)
}

func TestAuthService_GetAuth_WrongKey(t *testing.T) {
	ctx := context.Background()
	mockStorage := &mockAuthStorage{}

	keyA := make([]byte, 32)
	require.NoError(t, NewAuthService(mockStorage, keyA).SaveAuth(ctx, &storage.AuthData{
		AccessToken: "secret-jwt-token",
	}))

	// Другой ключ (другая passphrase) - расшифровка должна провалиться
	keyB := make([]byte, 32)
	keyB[0] = 0xFF

	_, err := NewAuthService(mockStorage, keyB).GetAuth(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decrypt access token")
}

func TestAuthService_GetAuth_NotFound(t *testing.T) {
	mockStorage := &mockAuthStorage{}
	authService := NewAuthService(mockStorage, make([]byte, 32))

	_, err := authService.GetAuth(context.Background())
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestAuthService_DeleteAuth(t *testing.T) {
	ctx := context.Background()
	mockStorage := &mockAuthStorage{}
	authService := NewAuthService(mockStorage, make([]byte, 32))

	require.NoError(t, authService.SaveAuth(ctx, &storage.AuthData{AccessToken: "token"}))
	require.NotNil(t, mockStorage.data)

	require.NoError(t, authService.DeleteAuth(ctx))
	assert.Nil(t, mockStorage.data)
}

func TestAuthService_IsAuthenticated(t *testing.T) {
	mockStorage := &mockAuthStorage{isAuthValue: true}
	authService := NewAuthService(mockStorage, make([]byte, 32))

	ok, err := authService.IsAuthenticated(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}
