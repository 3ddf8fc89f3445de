package repository

import (
	"github.com/chidough14/laravel-react-ecomm/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// AddOrIncrement รวม line เดิมด้วย conditional update ก้อนเดียว
// (quantity สะสม, price ทับด้วยราคาที่ resolve ล่าสุด) กัน lost update
// ตอน add พร้อมกันสอง request ถ้าไม่มี row ค่อย insert ใหม่
func (r *CartRepository) AddOrIncrement(userID, productID uint, quantity int, price int64, optionIDs entity.OptionIDMap) error {
	res := r.DB.Model(&entity.CartItem{}).
		Where("user_id = ? AND product_id = ? AND options_key = ?", userID, productID, optionIDs.Key()).
		Updates(map[string]any{
			"quantity": gorm.Expr("quantity + ?", quantity),
			"price":    price,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	item := entity.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
		OptionIDs: optionIDs,
	}
	return r.DB.Create(&item).Error
}

// SetQuantity ตั้งจำนวนของ line เดิม ไม่มี line → no-op ไม่ใช่ error
func (r *CartRepository) SetQuantity(userID, productID uint, quantity int, optionIDs entity.OptionIDMap) error {
	if quantity <= 0 {
		return r.Remove(userID, productID, optionIDs)
	}
	return r.DB.Model(&entity.CartItem{}).
		Where("user_id = ? AND product_id = ? AND options_key = ?", userID, productID, optionIDs.Key()).
		Update("quantity", quantity).Error
}

// Remove ลบจริง (Unscoped): soft delete จะค้างใน unique index
// แล้วทำให้ add line เดิมซ้ำไม่ได้
func (r *CartRepository) Remove(userID, productID uint, optionIDs entity.OptionIDMap) error {
	return r.DB.Unscoped().
		Where("user_id = ? AND product_id = ? AND options_key = ?", userID, productID, optionIDs.Key()).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) ListForUser(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&items).Error
	return items, err
}
