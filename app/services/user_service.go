package services

import (
	"errors"
	"taskboard/app/models"
	"taskboard/app/repo"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is deliberately explicit. 10 is bcrypt's own default and is
// adequate for this application's login volume.
const bcryptCost = 10

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

// Register hashes the password and stores a new user with role fixed to
// User. Roles are never escalated through any exposed operation.
func (s *UserService) Register(username, email, password string) error {
	count, err := s.users.CountByEmail(email)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{Username: username, Email: email, PasswordHash: string(hash), Role: models.RoleUser})
}

// ValidateCredentials returns ErrInvalidCredentials for both an unknown
// email and a wrong password so callers cannot tell which part failed.
func (s *UserService) ValidateCredentials(email, password string) (*models.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
