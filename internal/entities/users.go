package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	UserRoleManager  UserRole = "MANAGER"
	UserRoleEmployee UserRole = "EMPLOYEE"
)

// User is an account that can sign in. Managers own items, pots and
// employee accounts; employees only record logs. An EMPLOYEE always carries
// the ID of the MANAGER that created it, a MANAGER never does.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string    `gorm:"size:72" json:"-"`
	Role         UserRole  `gorm:"size:16;index" json:"role"`
	ManagerID    *string   `gorm:"size:36;index" json:"manager_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// IsManager reports whether the user holds the MANAGER role.
func (u *User) IsManager() bool {
	return u.Role == UserRoleManager
}
