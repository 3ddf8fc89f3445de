package entity

import (
	"gorm.io/gorm"
)

// Kind ของ VariationType กำหนดว่า FE แสดงตัวเลือกแบบไหน
const (
	VariationKindSelect = "Select"
	VariationKindRadio  = "Radio"
	VariationKindImage  = "Image"
)

type VariationType struct {
	gorm.Model
	ProductID uint   `gorm:"index" json:"productId"`
	Name      string `json:"name"`
	Kind      string `gorm:"not null;default:Select" json:"kind"`
	SortOrder int    `gorm:"not null;default:0" json:"sortOrder"`

	Options []VariationTypeOption `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"options"`
}
