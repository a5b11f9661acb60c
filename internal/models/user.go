package models

import "time"

// User is a chat participant. The ID is the stable identity assigned by the
// messaging gateway, not an auto-increment value. Users are created on first
// contact and never deleted.
type User struct {
	ID              int64     `gorm:"primarykey;autoIncrement:false" json:"id"`
	Username        string    `gorm:"index" json:"username"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Role            string    `gorm:"default:''" json:"role"` // agent / delivery / '' (unset)
	IsAuthenticated bool      `gorm:"default:false" json:"is_authenticated"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}
