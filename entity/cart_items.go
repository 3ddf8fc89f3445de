package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	UserID uint `gorm:"index:idx_cart_line,unique" json:"userId"`
	User   User `json:"-"`

	ProductID uint    `gorm:"index:idx_cart_line,unique" json:"productId"`
	Product   Product `json:"-"`

	Quantity int   `json:"quantity"`
	Price    int64 `json:"price"` // unit price snapshot ตอน add

	// selection ที่เลือกไว้ (variation type id -> option id)
	OptionIDs OptionIDMap `gorm:"serializer:json" json:"optionIds"`
	// คีย์จริงของ line คือ (user, product, options_key) ไม่ใช่ product อย่างเดียว
	OptionsKey string `gorm:"index:idx_cart_line,unique" json:"-"`
}

func (ci *CartItem) BeforeSave(tx *gorm.DB) error {
	ci.OptionsKey = ci.OptionIDs.Key()
	return nil
}
