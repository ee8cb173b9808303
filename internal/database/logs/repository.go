// Package logs provides database operations for production/waste entries
// and the aggregations behind the dashboard.
package logs

import (
	"gorm.io/gorm"

	"github.com/buffetops/buffet/internal/entities"
)

// Repository handles all log database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new logs repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateLog inserts a new production or waste entry.
func (r *Repository) CreateLog(entry *entities.Log) (*entities.Log, error) {
	if err := r.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// GetLogsByUser returns a user's entries, newest first.
func (r *Repository) GetLogsByUser(userID string) ([]entities.Log, error) {
	var entries []entities.Log
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&entries).Error
	return entries, err
}

// TotalWeight sums the logged weight of one log type across all entries.
func (r *Repository) TotalWeight(logType entities.LogType) (float64, error) {
	var total float64
	err := r.db.Model(&entities.Log{}).
		Where("type = ?", logType).
		Select("COALESCE(SUM(weight), 0)").
		Scan(&total).Error
	return total, err
}

// ItemStats holds aggregated production and waste weight for one item.
type ItemStats struct {
	ItemID     string  `json:"item_id"`
	Name       string  `json:"name"`
	Production float64 `json:"production"`
	Waste      float64 `json:"waste"`
}

// GetItemStats returns per-item production/waste totals. Items without any
// entries appear with zero totals; entries whose item was deleted drop out
// of the join.
func (r *Repository) GetItemStats() ([]ItemStats, error) {
	var stats []ItemStats
	err := r.db.Table("items").
		Select(`items.id AS item_id,
			items.name AS name,
			COALESCE(SUM(CASE WHEN logs.type = ? THEN logs.weight ELSE 0 END), 0) AS production,
			COALESCE(SUM(CASE WHEN logs.type = ? THEN logs.weight ELSE 0 END), 0) AS waste`,
			entities.LogTypeProduction, entities.LogTypeWaste).
		Joins("LEFT JOIN logs ON logs.item_id = items.id").
		Group("items.id, items.name").
		Order("items.name ASC").
		Scan(&stats).Error
	return stats, err
}
