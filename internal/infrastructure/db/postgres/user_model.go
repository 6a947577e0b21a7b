package postgres

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
