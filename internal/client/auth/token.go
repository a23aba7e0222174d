package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims извлекает claims без проверки подписи.
// Клиент не знает серверного секрета и использует токен только чтобы
// понять, когда истекает сессия и кому она принадлежит.
func tokenClaims(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return claims, nil
}

// TokenExpiry возвращает срок действия access токена.
// Нулевое время означает, что exp в токене отсутствует.
func TokenExpiry(tokenString string) (time.Time, error) {
	claims, err := tokenClaims(tokenString)
	if err != nil {
		return time.Time{}, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, nil
	}
	return exp.Time, nil
}

// TokenSubject возвращает subject (ID пользователя) из access токена
func TokenSubject(tokenString string) (string, error) {
	claims, err := tokenClaims(tokenString)
	if err != nil {
		return "", err
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("failed to read sub claim: %w", err)
	}
	return sub, nil
}
