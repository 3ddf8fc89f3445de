package entity

import (
	"gorm.io/gorm"
)

type Vendor struct {
	gorm.Model
	UserID    uint   `gorm:"uniqueIndex" json:"userId"`
	StoreName string `gorm:"not null" json:"storeName"`
	Status    string `gorm:"not null;default:approved" json:"status"`
}
