package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/willowworks/batrack/internal/model"
	"github.com/willowworks/batrack/internal/repository"
	"github.com/willowworks/batrack/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService is the credential store: it owns password hashing and the
// registration/login checks against the user repository.
type AuthService struct {
	userRepository repository.UserRepository
}

func NewAuthService(userRepository repository.UserRepository) *AuthService {
	return &AuthService{
		userRepository: userRepository,
	}
}

// Register persists a new account. The raw password is bcrypt-hashed before
// the write; the plaintext is never stored or logged. Duplicate email and
// duplicate national ID surface as the repository's sentinel errors.
func (s *AuthService) Register(fields *validation.RegisterFields) (*model.User, error) {
	hash, err := s.HashPassword(fields.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        fields.Email,
		PasswordHash: hash,
		Name:         fields.Name,
		Gender:       fields.Gender,
		NationalID:   fields.NationalID,
		Age:          fields.Age,
		Location:     fields.Location,
		CreatedAt:    time.Now(),
	}

	err = s.userRepository.Create(user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) || errors.Is(err, repository.ErrDuplicateNationalID) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Login verifies credentials and returns the account. Lookup failure and
// password mismatch both collapse into ErrInvalidCredentials so the response
// does not reveal which half was wrong.
func (s *AuthService) Login(email, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepository.ByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	err = s.ComparePassword(password, user.PasswordHash)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) ByEmail(email string) (*model.User, error) {
	return s.userRepository.ByEmail(strings.TrimSpace(strings.ToLower(email)))
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) ComparePassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
