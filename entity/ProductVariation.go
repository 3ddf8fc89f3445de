package entity

import (
	"gorm.io/gorm"
)

// ProductVariation คือ combination หนึ่งชุด (option เดียวต่อ variation type)
// พร้อม override ราคา/จำนวน ถ้า nil ให้ fallback ไปใช้ของ Product
type ProductVariation struct {
	gorm.Model
	ProductID uint `gorm:"index" json:"productId"`

	// one option id per variation type, ordered by the product's type order
	OptionIDs []uint `gorm:"serializer:json" json:"optionIds"`
	// canonical key ของ OptionIDs ใช้ match ตอน merge และตอนคิดราคา
	OptionsKey string `gorm:"index" json:"-"`

	Quantity *int   `json:"quantity"`
	Price    *int64 `json:"price"`
}

func (v *ProductVariation) BeforeSave(tx *gorm.DB) error {
	v.OptionsKey = OptionSetKey(v.OptionIDs)
	return nil
}
