package service

import "errors"

// ErrInvalidInput означает, что входные данные не прошли проверку. Обработчики отвечают 400.
var ErrInvalidInput = errors.New("invalid input")
