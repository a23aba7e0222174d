package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStorageKey(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	require.Len(t, salt, SaltSize)

	key1, err := DeriveStorageKey("correct horse battery", salt)
	require.NoError(t, err)
	assert.Len(t, key1, KeyLen)

	// Детерминированность: тот же passphrase + соль дают тот же ключ
	key2, err := DeriveStorageKey("correct horse battery", salt)
	require.NoError(t, err)
	assert.Equal(t, key1, key2)

	// Другая соль дает другой ключ
	otherSalt, err := GenerateSalt()
	require.NoError(t, err)
	key3, err := DeriveStorageKey("correct horse battery", otherSalt)
	require.NoError(t, err)
	assert.NotEqual(t, key1, key3)
}

func TestDeriveStorageKey_Errors(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	_, err = DeriveStorageKey("", salt)
	assert.Error(t, err)

	_, err = DeriveStorageKey("passphrase", nil)
	assert.Error(t, err)

	_, err = DeriveStorageKeyFromBase64Salt("passphrase", "not-base64!!!")
	assert.Error(t, err)
}

func TestEncryptDecrypt(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	key, err := DeriveStorageKey("passphrase", salt)
	require.NoError(t, err)

	plaintext := []byte("eyJhbGciOiJIUzI1NiJ9.access-token")

	encrypted, err := Encrypt(plaintext, key)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, encrypted)
	assert.Greater(t, len(encrypted), NonceSize)

	decrypted, err := Decrypt(encrypted, key)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestDecrypt_WrongKey(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	key, err := DeriveStorageKey("passphrase", salt)
	require.NoError(t, err)
	wrongKey, err := DeriveStorageKey("other passphrase", salt)
	require.NoError(t, err)

	encrypted, err := Encrypt([]byte("secret"), key)
	require.NoError(t, err)

	_, err = Decrypt(encrypted, wrongKey)
	assert.Error(t, err)
}

func TestEncrypt_Errors(t *testing.T) {
	key := make([]byte, KeyLen)

	_, err := Encrypt(nil, key)
	assert.Error(t, err)

	_, err = Encrypt([]byte("data"), []byte("short-key"))
	assert.Error(t, err)

	_, err = Decrypt([]byte("short"), key)
	assert.Error(t, err)
}
