package auth

import (
	"errors"
	"fmt"
	"regexp"

	"gorm.io/gorm"

	"github.com/buffetops/buffet/internal/config"
	"github.com/buffetops/buffet/internal/database/users"
	"github.com/buffetops/buffet/internal/entities"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// Callers must not distinguish the two cases.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrEmailRequired      = errors.New("email is required")
	ErrEmailInvalid       = errors.New("invalid email format")
	ErrNotManager         = errors.New("only managers can manage employees")
)

// Service handles credential checks and account management on top of the
// users repository.
type Service struct {
	repo   *users.Repository
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(repo *users.Repository, cfg config.Auth) *Service {
	return &Service{
		repo:   repo,
		config: cfg,
	}
}

// Login looks up a user by email and verifies the password. Unknown email
// and wrong password both return ErrInvalidCredentials so nothing leaks
// about which of the two failed.
func (s *Service) Login(email, password string) (*entities.User, error) {
	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// RegisterManager creates a self-registered MANAGER account.
func (s *Service) RegisterManager(email, password string) (*entities.User, error) {
	if err := s.validateCredentials(email, password); err != nil {
		return nil, err
	}
	return s.createUser(email, password, entities.UserRoleManager, nil)
}

// RegisterEmployee creates an EMPLOYEE account linked to the given manager.
// The manager ID must resolve to an existing MANAGER, otherwise the call is
// rejected with ErrNotManager.
func (s *Service) RegisterEmployee(managerID, email, password string) (*entities.User, error) {
	manager, err := s.GetUserByID(managerID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrNotManager
		}
		return nil, err
	}
	if !manager.IsManager() {
		return nil, ErrNotManager
	}

	if err := s.validateCredentials(email, password); err != nil {
		return nil, err
	}
	return s.createUser(email, password, entities.UserRoleEmployee, &manager.ID)
}

// DeleteEmployee removes one of the manager's own employees. Employees of
// other managers (and managers themselves) are out of reach.
func (s *Service) DeleteEmployee(managerID, employeeID string) error {
	err := s.repo.DeleteEmployee(managerID, employeeID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by their ID.
func (s *Service) GetUserByID(id string) (*entities.User, error) {
	user, err := s.repo.GetUserByID(id)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func (s *Service) validateCredentials(email, password string) error {
	if email == "" {
		return ErrEmailRequired
	}
	// RFC 5321 length limit is 254
	if len(email) > 254 || !emailPattern.MatchString(email) {
		return ErrEmailInvalid
	}
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func (s *Service) createUser(email, password string, role entities.UserRole, managerID *string) (*entities.User, error) {
	// Pre-check for a friendlier error; the unique index on email is what
	// actually guarantees no duplicates under concurrent registration.
	_, err := s.repo.GetUserByEmail(email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, users.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	passwordHash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.repo.CreateUser(&entities.User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		ManagerID:    managerID,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against a concurrent registration
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
