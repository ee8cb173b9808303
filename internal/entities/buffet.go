package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LogType string

const (
	LogTypeProduction LogType = "PRODUCTION"
	LogTypeWaste      LogType = "WASTE"
)

// Item is a tracked food product with a cost-of-goods value, owned by the
// manager that created it.
type Item struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"size:36;index" json:"user_id"`
	Name        string    `gorm:"size:255" json:"name"`
	Description string    `gorm:"size:1024" json:"description,omitempty"`
	COGS        float64   `json:"cogs"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// Pot is a serving container with a capacity and tare weight.
type Pot struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;index" json:"user_id"`
	Name      string    `gorm:"size:255" json:"name"`
	Capacity  float64   `json:"capacity"`
	Weight    float64   `json:"weight"`
	ImgURL    string    `gorm:"size:2048" json:"img_url,omitempty"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Pot) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Log is a single production or waste weight entry, linked to the item being
// weighed, the pot it was weighed in and the user who recorded it.
type Log struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;index" json:"user_id"`
	ItemID    string    `gorm:"size:36;index" json:"item_id"`
	PotID     string    `gorm:"size:36;index" json:"pot_id"`
	Type      LogType   `gorm:"size:16;index" json:"type"`
	Weight    float64   `json:"weight"`
	CreatedAt time.Time `json:"created_at"`
}

func (l *Log) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
