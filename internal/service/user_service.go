package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/cookfolio-backend/internal/models"
	"github.com/ignatzorin/cookfolio-backend/internal/validation"
)

// UserRepository описывает хранилище пользователей.
type UserRepository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserService регистрирует пользователей. Пароль хранится только в виде bcrypt хеша.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// RegisterInput содержит данные для создания пользователя.
type RegisterInput struct {
	Username string
	Password string
}

// Register проверяет данные, хеширует пароль и создаёт пользователя.
// Занятое имя возвращает repository.ErrUsernameTaken.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)

	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("user service: %w: %v", ErrInvalidInput, err)
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, fmt.Errorf("user service: %w: %v", ErrInvalidInput, err)
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("user service: не удалось захешировать пароль: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, username, string(passHash))
	if err != nil {
		return nil, fmt.Errorf("user service: %w", err)
	}
	return user, nil
}

// GetUser возвращает пользователя по идентификатору.
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.GetUser(ctx, id)
}

// GetUserByUsername возвращает пользователя по имени.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.repo.GetUserByUsername(ctx, strings.TrimSpace(username))
}
