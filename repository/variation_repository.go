package repository

import (
	"github.com/chidough14/laravel-react-ecomm/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VariationRepository struct{ DB *gorm.DB }

func NewVariationRepository(db *gorm.DB) *VariationRepository {
	return &VariationRepository{DB: db}
}

func (r *VariationRepository) ListForProduct(productID uint) ([]entity.ProductVariation, error) {
	var rows []entity.ProductVariation
	err := r.DB.Where("product_id = ?", productID).Order("id").Find(&rows).Error
	return rows, err
}

// Upsert: row ที่มี id แล้ว → ทับ option_ids/quantity/price, id = 0 → insert
// (รับ rows จาก merge ของหน้า variations ทีเดียวทั้งชุด)
func (r *VariationRepository) Upsert(tx *gorm.DB, rows []entity.ProductVariation) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"option_ids", "options_key", "quantity", "price", "updated_at"}),
	}).Create(&rows).Error
}

func (r *VariationRepository) Delete(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Unscoped().Delete(&entity.ProductVariation{}, ids).Error
}

// FindOptionsByIDs คือ bulk lookup ของ cart view (option + type + images)
func (r *VariationRepository) FindOptionsByIDs(ids []uint) ([]entity.VariationTypeOption, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var options []entity.VariationTypeOption
	err := r.DB.Where("id IN ?", ids).
		Preload("VariationType").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order, id") }).
		Find(&options).Error
	return options, err
}

// ---------------- variation types / options (vendor admin) ----------------

func (r *VariationRepository) CreateType(vt *entity.VariationType) error {
	return r.DB.Create(vt).Error
}

func (r *VariationRepository) FindType(id uint) (*entity.VariationType, error) {
	var vt entity.VariationType
	if err := r.DB.Preload("Options").First(&vt, id).Error; err != nil {
		return nil, err
	}
	return &vt, nil
}

func (r *VariationRepository) SaveType(vt *entity.VariationType) error {
	return r.DB.Save(vt).Error
}

func (r *VariationRepository) DeleteType(id uint) error {
	return r.DB.Select("Options").Delete(&entity.VariationType{Model: gorm.Model{ID: id}}).Error
}

func (r *VariationRepository) CreateOption(opt *entity.VariationTypeOption) error {
	return r.DB.Create(opt).Error
}

func (r *VariationRepository) FindOption(id uint) (*entity.VariationTypeOption, error) {
	var opt entity.VariationTypeOption
	if err := r.DB.Preload("VariationType").First(&opt, id).Error; err != nil {
		return nil, err
	}
	return &opt, nil
}

func (r *VariationRepository) SaveOption(opt *entity.VariationTypeOption) error {
	return r.DB.Save(opt).Error
}

func (r *VariationRepository) DeleteOption(id uint) error {
	return r.DB.Delete(&entity.VariationTypeOption{}, id).Error
}
