package repository

import (
	"github.com/chidough14/laravel-react-ecomm/entity"

	"gorm.io/gorm"
)

type ProductRepository struct{ DB *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{DB: db} }

func (r *ProductRepository) ListPublished(limit int) ([]entity.Product, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var products []entity.Product
	err := r.DB.Where("status = ?", entity.ProductStatusPublished).
		Order("id DESC").Limit(limit).
		Find(&products).Error
	return products, err
}

// FindPublishedBySlug โหลดข้อมูลหน้า product เต็ม ๆ (types + options + images
// + variations + seller) สำหรับหน้า detail
func (r *ProductRepository) FindPublishedBySlug(slug string) (*entity.Product, error) {
	var p entity.Product
	err := r.DB.Where("slug = ? AND status = ?", slug, entity.ProductStatusPublished).
		Preload("VariationTypes", orderBySort).
		Preload("VariationTypes.Options", orderBySort).
		Preload("VariationTypes.Options.Images", orderBySort).
		Preload("Variations").
		Preload("User.Vendor").
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindPublishedByID ใช้ตอน add to cart: ต้องได้ types/options สำหรับ default
// selection และ variations สำหรับคิดราคา
func (r *ProductRepository) FindPublishedByID(id uint) (*entity.Product, error) {
	var p entity.Product
	err := r.DB.Where("id = ? AND status = ?", id, entity.ProductStatusPublished).
		Preload("VariationTypes", orderBySort).
		Preload("VariationTypes.Options", orderBySort).
		Preload("Variations").
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindPublishedByIDs คือ bulk lookup ของ cart view (หนึ่ง query ต่อ cart
// ไม่ใช่หนึ่ง query ต่อ line)
func (r *ProductRepository) FindPublishedByIDs(ids []uint) ([]entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []entity.Product
	err := r.DB.Where("id IN ? AND status = ?", ids, entity.ProductStatusPublished).
		Preload("User.Vendor").
		Find(&products).Error
	return products, err
}

// FindWithVariations โหลด product พร้อม types/options/variations สำหรับ
// generate + merge ฝั่ง vendor
func (r *ProductRepository) FindWithVariations(id uint) (*entity.Product, error) {
	var p entity.Product
	err := r.DB.
		Preload("VariationTypes", orderBySort).
		Preload("VariationTypes.Options", orderBySort).
		Preload("Variations").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) ListForVendor(userID uint) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&products).Error
	return products, err
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Save(p *entity.Product) error {
	return r.DB.Save(p).Error
}

func orderBySort(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order, id")
}
