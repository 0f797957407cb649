package repository

import "errors"

var (
	// ErrPortfolioNotFound возвращается, когда портфолио не найдено.
	ErrPortfolioNotFound = errors.New("portfolio not found")
	// ErrCaseStudyNotFound возвращается, когда статья не найдена.
	ErrCaseStudyNotFound = errors.New("case study not found")
	// ErrUserNotFound возвращается, когда пользователь не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrPreferencesNotFound возвращается, когда у пользователя нет сохранённых предпочтений.
	ErrPreferencesNotFound = errors.New("user preferences not found")
	// ErrUsernameTaken возвращается при попытке занять существующее имя пользователя.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidTarget возвращается, если ссылка рекомендации на цель задана наполовину.
	ErrInvalidTarget = errors.New("invalid recommendation target")
)
