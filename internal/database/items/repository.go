// Package items provides database operations for menu items.
package items

import (
	"errors"

	"gorm.io/gorm"

	"github.com/buffetops/buffet/internal/entities"
)

// ErrNotFound is returned when no item matches the lookup.
var ErrNotFound = errors.New("item not found")

// Repository handles all item database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new items repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateItem inserts a new item owned by the given manager.
func (r *Repository) CreateItem(item *entities.Item) (*entities.Item, error) {
	if err := r.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// GetItemsByOwner returns the items owned by a manager.
func (r *Repository) GetItemsByOwner(userID string) ([]entities.Item, error) {
	var items []entities.Item
	err := r.db.Where("user_id = ?", userID).Order("name ASC").Find(&items).Error
	return items, err
}

// GetAllItems returns every item. Used by the log entry form, which lets any
// authenticated user record against any item.
func (r *Repository) GetAllItems() ([]entities.Item, error) {
	var items []entities.Item
	err := r.db.Order("name ASC").Find(&items).Error
	return items, err
}

// UpdateItem updates name, description and cost of a manager's own item.
func (r *Repository) UpdateItem(userID, itemID, name, description string, cogs float64) error {
	result := r.db.Model(&entities.Item{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Updates(map[string]any{
			"name":        name,
			"description": description,
			"cogs":        cogs,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteItem removes a manager's own item.
func (r *Repository) DeleteItem(userID, itemID string) error {
	result := r.db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&entities.Item{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
