package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Константы валидации
const (
	MinUsernameLength    = 3
	MaxUsernameLength    = 30
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxShortFieldLength  = 100
	MaxURLLength         = 500
	MaxListItems         = 50
	MaxListItemLength    = 100
	MaxStoryLength       = 10000
	MaxContentLength     = 50000
	MaxRecipeTextLength  = 20000
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidateLength проверяет длину строки в символах.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateRequired проверяет, что строка не пустая после обрезки пробелов.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s обязателен", fieldName)
	}
	return nil
}

// ValidateOptional проверяет длину необязательного поля.
func ValidateOptional(fieldName string, value *string, max int) error {
	if value == nil {
		return nil
	}
	return ValidateLength(fieldName, *value, 0, max)
}

// ValidateUsername проверяет имя пользователя.
func ValidateUsername(username string) error {
	if err := ValidateLength("username", username, MinUsernameLength, MaxUsernameLength); err != nil {
		return err
	}
	if !usernameRe.MatchString(username) {
		return fmt.Errorf("username может содержать только латиницу, цифры и символы _ . -")
	}
	return nil
}

// ValidateStringList проверяет число элементов списка и длину каждого.
func ValidateStringList(fieldName string, items []string) error {
	if len(items) > MaxListItems {
		return fmt.Errorf("%s: не более %d элементов", fieldName, MaxListItems)
	}
	for _, item := range items {
		if err := ValidateLength(fieldName, item, 0, MaxListItemLength); err != nil {
			return err
		}
	}
	return nil
}

// FirstError возвращает первую ненулевую ошибку.
func FirstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
