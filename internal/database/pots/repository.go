// Package pots provides database operations for serving containers.
package pots

import (
	"errors"

	"gorm.io/gorm"

	"github.com/buffetops/buffet/internal/entities"
)

// ErrNotFound is returned when no pot matches the lookup.
var ErrNotFound = errors.New("pot not found")

// Repository handles all pot database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new pots repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreatePot inserts a new pot owned by the given manager.
func (r *Repository) CreatePot(pot *entities.Pot) (*entities.Pot, error) {
	if err := r.db.Create(pot).Error; err != nil {
		return nil, err
	}
	return pot, nil
}

// GetPotsByOwner returns the pots owned by a manager.
func (r *Repository) GetPotsByOwner(userID string) ([]entities.Pot, error) {
	var pots []entities.Pot
	err := r.db.Where("user_id = ?", userID).Order("name ASC").Find(&pots).Error
	return pots, err
}

// GetAllPots returns every pot, for the log entry form.
func (r *Repository) GetAllPots() ([]entities.Pot, error) {
	var pots []entities.Pot
	err := r.db.Order("name ASC").Find(&pots).Error
	return pots, err
}

// UpdatePot updates a manager's own pot.
func (r *Repository) UpdatePot(userID, potID, name string, capacity, weight float64, imgURL string) error {
	result := r.db.Model(&entities.Pot{}).
		Where("id = ? AND user_id = ?", potID, userID).
		Updates(map[string]any{
			"name":     name,
			"capacity": capacity,
			"weight":   weight,
			"img_url":  imgURL,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePot removes a manager's own pot.
func (r *Repository) DeletePot(userID, potID string) error {
	result := r.db.Where("id = ? AND user_id = ?", potID, userID).Delete(&entities.Pot{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
