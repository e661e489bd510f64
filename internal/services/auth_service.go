package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/collabboard/collabboard-api/internal/credentials"
	"github.com/collabboard/collabboard-api/internal/models"
	"github.com/collabboard/collabboard-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUsernameOrEmailTaken = errors.New("username or email already exists")
	ErrInvalidCredentials   = errors.New("bad username/email or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
	ErrFailedToIssueToken   = errors.New("failed to issue token")
)

// AuthService handles registration, login, and user lookup.
type AuthService struct {
	userRepo repository.UserRepository
	creds    *credentials.Service
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, creds *credentials.Service) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		creds:    creds,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a new user. The username and email must both be
// unused; matching is case-sensitive and exact. The password is hashed
// before storage, plaintext is never persisted.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	if _, err := s.userRepo.FindByUsername(input.Username); err == nil {
		return nil, ErrUsernameOrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrUsernameOrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := s.creds.HashPassword(input.Password)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashed,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, ErrFailedToCreateUser
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	UsernameOrEmail string
	Password        string
}

// Login verifies credentials and returns a signed token together with
// the authenticated user. The identifier matches either username or
// email exactly; all failures collapse into ErrInvalidCredentials so the
// response never reveals which part was wrong.
func (s *AuthService) Login(input LoginInput) (string, *models.User, error) {
	user, err := s.userRepo.FindByUsernameOrEmail(input.UsernameOrEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.creds.CheckPassword(user.PasswordHash, input.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.creds.IssueToken(user.ID)
	if err != nil {
		return "", nil, ErrFailedToIssueToken
	}

	return token, user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// SearchUsers finds users whose username or email contains the query.
// An empty query returns an empty list, not an error.
func (s *AuthService) SearchUsers(query string) ([]models.User, error) {
	if query == "" {
		return []models.User{}, nil
	}

	users, err := s.userRepo.Search(query)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	return users, nil
}
