package entity

import (
	"time"
)

// User represents a registered account. Immutable after registration except
// for password hash rotation, which is out of scope here.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Login     string    `gorm:"size:255;uniqueIndex;not null" json:"login"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Receipts []Receipt `gorm:"foreignKey:UserID" json:"-"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
