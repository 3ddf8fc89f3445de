package services

import (
	"testing"

	"github.com/chidough14/laravel-react-ecomm/entity"
	"github.com/chidough14/laravel-react-ecomm/repository"

	"github.com/stretchr/testify/require"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// in-memory sqlite มีหนึ่ง db ต่อ connection — จำกัด pool ไว้ที่ 1
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Vendor{},
		&entity.Product{},
		&entity.VariationType{}, &entity.VariationTypeOption{}, &entity.OptionImage{},
		&entity.ProductVariation{},
		&entity.CartItem{},
	))
	return db
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db,
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		repository.NewVariationRepository(db),
	)
}

func newVariationService(db *gorm.DB) *VariationService {
	return NewVariationService(db,
		repository.NewVariationRepository(db),
		repository.NewProductRepository(db),
	)
}

// seedSeller สร้าง user + vendor profile
func seedSeller(t *testing.T, db *gorm.DB, email, store string) *entity.User {
	t.Helper()
	user := entity.User{Email: email, Password: "x", Name: store + " owner", Role: "vendor"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&entity.Vendor{UserID: user.ID, StoreName: store}).Error)
	return &user
}

// seedTee สร้าง product Color{Red,Blue} × Size{S,M}, base 1200/20,
// override Red+S = 999/5 และคืน product ที่ preload ครบ
func seedTee(t *testing.T, db *gorm.DB, seller *entity.User, slug string) *entity.Product {
	t.Helper()

	p := entity.Product{
		Title:    "Classic Tee",
		Slug:     slug,
		Price:    1200,
		Quantity: 20,
		Status:   entity.ProductStatusPublished,
		Picture:  "/uploads/tee.jpg",
		UserID:   seller.ID,
	}
	require.NoError(t, db.Create(&p).Error)

	color := entity.VariationType{
		ProductID: p.ID, Name: "Color", Kind: entity.VariationKindImage, SortOrder: 1,
		Options: []entity.VariationTypeOption{
			{Name: "Red", SortOrder: 1, Images: []entity.OptionImage{{URL: "/uploads/red.jpg", Thumb: "/uploads/red-sm.jpg"}}},
			{Name: "Blue", SortOrder: 2},
		},
	}
	size := entity.VariationType{
		ProductID: p.ID, Name: "Size", SortOrder: 2,
		Options: []entity.VariationTypeOption{
			{Name: "S", SortOrder: 1},
			{Name: "M", SortOrder: 2},
		},
	}
	require.NoError(t, db.Create(&color).Error)
	require.NoError(t, db.Create(&size).Error)

	for _, combo := range GenerateCombinations([]entity.VariationType{color, size}) {
		quantity, price := p.Quantity, p.Price
		if combo[color.ID].Name == "Red" && combo[size.ID].Name == "S" {
			quantity, price = 5, 999
		}
		row := entity.ProductVariation{
			ProductID: p.ID,
			OptionIDs: []uint{combo[color.ID].ID, combo[size.ID].ID},
			Quantity:  &quantity,
			Price:     &price,
		}
		require.NoError(t, db.Create(&row).Error)
	}

	loaded, err := repository.NewProductRepository(db).FindWithVariations(p.ID)
	require.NoError(t, err)
	return loaded
}

// selection helpers — teeSelection(p, "Red", "S") → OptionIDMap
func teeSelection(t *testing.T, p *entity.Product, colorName, sizeName string) entity.OptionIDMap {
	t.Helper()
	sel := entity.OptionIDMap{}
	for _, vt := range p.VariationTypes {
		var want string
		switch vt.Name {
		case "Color":
			want = colorName
		case "Size":
			want = sizeName
		}
		for _, opt := range vt.Options {
			if opt.Name == want {
				sel[vt.ID] = opt.ID
			}
		}
	}
	require.Len(t, sel, 2)
	return sel
}
