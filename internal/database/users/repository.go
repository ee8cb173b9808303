// Package users provides database operations for user accounts. It is the
// credential store consumed by internal/auth.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.GetUserByEmail(email)
package users

import (
	"errors"

	"gorm.io/gorm"

	"github.com/buffetops/buffet/internal/entities"
)

// ErrNotFound is returned when no user matches the lookup.
var ErrNotFound = errors.New("user not found")

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser inserts a new user row. The unique index on email serializes
// concurrent registrations with the same address.
func (r *Repository) CreateUser(user *entities.User) (*entities.User, error) {
	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email.
func (r *Repository) GetUserByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (r *Repository) GetUserByID(id string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetEmployees returns the employees owned by a manager.
func (r *Repository) GetEmployees(managerID string) ([]entities.User, error) {
	var employees []entities.User
	err := r.db.
		Where("manager_id = ? AND role = ?", managerID, entities.UserRoleEmployee).
		Order("email ASC").
		Find(&employees).Error
	return employees, err
}

// DeleteEmployee removes an employee owned by the given manager. Employees
// of other managers, and managers themselves, are out of reach.
func (r *Repository) DeleteEmployee(managerID, employeeID string) error {
	result := r.db.
		Where("id = ? AND manager_id = ? AND role = ?", employeeID, managerID, entities.UserRoleEmployee).
		Delete(&entities.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
