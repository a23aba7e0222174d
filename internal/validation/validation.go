package validation

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

// UsernamePattern определяет допустимый формат username
// Только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
// Длина: 3-32 символа
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 3
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 32
	// MinPasswordLen минимальная длина пароля учетной записи
	MinPasswordLen = 8
	// MinExportPasswordLen минимальная длина пароля экспортируемого бандла
	MinExportPasswordLen = 8
	// MaxProjectNameLen максимальная длина названия проекта
	MaxProjectNameLen = 120
)

// ValidateUsername проверяет, что username соответствует требованиям
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю учетной записи
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateExportPassword проверяет пароль для шифрования экспортируемого
// бандла: длину и совпадение с подтверждением. Проверка выполняется до
// какого-либо сетевого запроса.
func ValidateExportPassword(password, confirmation string) error {
	if password == "" {
		return fmt.Errorf("export password cannot be empty")
	}

	if len(password) < MinExportPasswordLen {
		return fmt.Errorf("export password must be at least %d characters long", MinExportPasswordLen)
	}

	if password != confirmation {
		return fmt.Errorf("passwords do not match")
	}

	return nil
}

// ValidateID проверяет, что идентификатор сущности - валидный UUID.
// Сервер выдает UUID всем сущностям; проверка до запроса дает внятную
// ошибку вместо 404 с сервера.
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("id cannot be empty")
	}

	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid id %q: expected a UUID", id)
	}

	return nil
}

// ValidateProjectName проверяет название проекта или шаблона
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if len(name) > MaxProjectNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxProjectNameLen)
	}

	return nil
}
