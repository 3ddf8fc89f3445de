package configs

import (
	"log"

	"github.com/chidough14/laravel-react-ecomm/entity"
	"github.com/chidough14/laravel-react-ecomm/services"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin สร้าง admin คนแรกถ้ายังไม่มี (email/pass ตั้งผ่าน env ได้)
func SeedAdmin() error {
	var count int64
	if err := db.Model(&entity.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := getEnv("ADMIN_EMAIL", "admin@example.com")
	pass := getEnv("ADMIN_PASSWORD", "admin1234")
	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)

	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("seeded admin:", email)
	return nil
}

// SeedDemoCatalog สร้างร้านตัวอย่างหนึ่งร้านพร้อม product ที่มี variation
// ครบชุด (Color/Size) ไว้ลองยิง API ได้เลย
func SeedDemoCatalog() error {
	var count int64
	if err := db.Model(&entity.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("seller1234"), bcrypt.DefaultCost)
	seller := entity.User{
		Email:    "seller@example.com",
		Password: string(hash),
		Name:     "Demo Seller",
		Role:     "vendor",
	}
	if err := db.Create(&seller).Error; err != nil {
		return err
	}
	if err := db.Create(&entity.Vendor{UserID: seller.ID, StoreName: "Demo Store"}).Error; err != nil {
		return err
	}

	product := entity.Product{
		Title:       "Classic Tee",
		Slug:        "classic-tee",
		Description: "Plain cotton tee",
		Price:       1200,
		Quantity:    20,
		Status:      entity.ProductStatusPublished,
		Picture:     "/uploads/classic-tee.jpg",
		UserID:      seller.ID,
	}
	if err := db.Create(&product).Error; err != nil {
		return err
	}

	color := entity.VariationType{
		ProductID: product.ID,
		Name:      "Color",
		Kind:      entity.VariationKindImage,
		SortOrder: 1,
		Options: []entity.VariationTypeOption{
			{Name: "Red", SortOrder: 1, Images: []entity.OptionImage{{URL: "/uploads/tee-red.jpg", Thumb: "/uploads/tee-red-sm.jpg"}}},
			{Name: "Blue", SortOrder: 2, Images: []entity.OptionImage{{URL: "/uploads/tee-blue.jpg", Thumb: "/uploads/tee-blue-sm.jpg"}}},
		},
	}
	size := entity.VariationType{
		ProductID: product.ID,
		Name:      "Size",
		Kind:      entity.VariationKindSelect,
		SortOrder: 2,
		Options: []entity.VariationTypeOption{
			{Name: "S", SortOrder: 1},
			{Name: "M", SortOrder: 2},
		},
	}
	if err := db.Create(&color).Error; err != nil {
		return err
	}
	if err := db.Create(&size).Error; err != nil {
		return err
	}

	// หนึ่ง row ต่อ combination; Red+S ลดราคาพิเศษเป็นตัวอย่าง override
	types := []entity.VariationType{color, size}
	rows := make([]entity.ProductVariation, 0, 4)
	for _, combo := range services.GenerateCombinations(types) {
		quantity, price := product.Quantity, product.Price
		if combo[color.ID].Name == "Red" && combo[size.ID].Name == "S" {
			quantity, price = 5, 999
		}
		rows = append(rows, entity.ProductVariation{
			ProductID: product.ID,
			OptionIDs: []uint{combo[color.ID].ID, combo[size.ID].ID},
			Quantity:  &quantity,
			Price:     &price,
		})
	}
	if err := db.Create(&rows).Error; err != nil {
		return err
	}

	log.Println("seeded demo catalog:", product.Slug)
	return nil
}
