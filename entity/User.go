package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:user" json:"role"` // user | vendor | admin

	// Relations — preload only when needed
	Vendor   *Vendor   `gorm:"foreignKey:UserID" json:"vendor,omitempty"`
	Products []Product `gorm:"foreignKey:UserID" json:"-"`
}
