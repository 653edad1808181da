package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the users table. Passwords are stored and compared
// as plaintext, matching the system this replaces; hashing is a known gap.
type UserModel struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Role       string    `gorm:"type:varchar(20);not null" json:"role"`
	Department string    `gorm:"size:100;not null" json:"department"`
	Year       string    `gorm:"size:20" json:"year"`
	Semester   string    `gorm:"size:20" json:"semester"`
	Name       string    `gorm:"size:100;unique;not null" json:"name"`
	Email      string    `gorm:"size:255;unique;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
