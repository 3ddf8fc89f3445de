package entity

import (
	"gorm.io/gorm"
)

type VariationTypeOption struct {
	gorm.Model
	VariationTypeID uint          `gorm:"index" json:"variationTypeId"`
	VariationType   VariationType `json:"-"`
	Name            string        `json:"name"`
	SortOrder       int           `gorm:"not null;default:0" json:"sortOrder"`

	Images []OptionImage `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"images"`
}

// FirstImage returns the thumbnail of the first image, if any.
func (o *VariationTypeOption) FirstImage() string {
	if len(o.Images) == 0 {
		return ""
	}
	if o.Images[0].Thumb != "" {
		return o.Images[0].Thumb
	}
	return o.Images[0].URL
}

type OptionImage struct {
	gorm.Model
	VariationTypeOptionID uint   `gorm:"index" json:"optionId"`
	URL                   string `json:"url"`
	Thumb                 string `json:"thumb"`
	SortOrder             int    `gorm:"not null;default:0" json:"sortOrder"`
}
