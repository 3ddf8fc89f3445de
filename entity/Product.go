package entity

import (
	"gorm.io/gorm"
)

const (
	ProductStatusDraft     = "draft"
	ProductStatusPublished = "published"
)

type Product struct {
	gorm.Model
	Title       string `json:"title"`
	Slug        string `gorm:"uniqueIndex" json:"slug"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // cents
	Quantity    int    `json:"quantity"`
	Status      string `gorm:"not null;default:draft" json:"status"`
	Picture     string `json:"picture"` // default image, options may override

	UserID uint `json:"userId"` // vendor owner
	User   User `json:"-"`

	VariationTypes []VariationType    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"variationTypes"`
	Variations     []ProductVariation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"variations"`
}
