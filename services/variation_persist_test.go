package services

import (
	"testing"

	"github.com/chidough14/laravel-react-ecomm/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"
)

func loadVariations(t *testing.T, db *gorm.DB, productID uint) []entity.ProductVariation {
	t.Helper()
	var rows []entity.ProductVariation
	require.NoError(t, db.Where("product_id = ?", productID).Order("id").Find(&rows).Error)
	return rows
}

func TestRefreshPreservesOverridesWhenOptionAdded(t *testing.T) {
	db := newTestDB(t)
	svc := newVariationService(db)
	seller := seedSeller(t, db, "seller@example.com", "Demo Store")
	p := seedTee(t, db, seller, "classic-tee")

	// Color เพิ่ม Green → 2×2 กลายเป็น 3×2
	var color entity.VariationType
	require.NoError(t, db.Where("product_id = ? AND name = ?", p.ID, "Color").First(&color).Error)
	_, err := svc.CreateOption(seller.ID, color.ID, &OptionIn{Name: "Green", SortOrder: 3})
	require.NoError(t, err)

	rows := loadVariations(t, db, p.ID)
	assert.Len(t, rows, 6)

	// override Red+S เดิมต้องรอด
	sel := teeSelection(t, p, "Red", "S")
	key := entity.OptionSetKey(sel.Values())
	found := false
	for _, row := range rows {
		if entity.OptionSetKey(row.OptionIDs) == key {
			found = true
			assert.Equal(t, 5, *row.Quantity)
			assert.Equal(t, int64(999), *row.Price)
		}
	}
	assert.True(t, found)
}

func TestRefreshDropsStaleRowsWhenOptionRemoved(t *testing.T) {
	db := newTestDB(t)
	svc := newVariationService(db)
	seller := seedSeller(t, db, "seller@example.com", "Demo Store")
	p := seedTee(t, db, seller, "classic-tee")

	sel := teeSelection(t, p, "Red", "S")
	redID := sel[p.VariationTypes[0].ID]
	require.NoError(t, svc.DeleteOption(seller.ID, redID))

	rows := loadVariations(t, db, p.ID)
	assert.Len(t, rows, 2) // Blue × {S, M}
	for _, row := range rows {
		assert.NotContains(t, row.OptionIDs, redID)
	}
}

func TestSaveFormsPersistsVendorOverrides(t *testing.T) {
	db := newTestDB(t)
	svc := newVariationService(db)
	seller := seedSeller(t, db, "seller@example.com", "Demo Store")
	p := seedTee(t, db, seller, "classic-tee")

	forms, err := svc.EditableForms(seller.ID, p.ID)
	require.NoError(t, err)
	require.Len(t, forms, 4)

	// vendor ตั้งราคาใหม่ทุก row
	for i := range forms {
		forms[i].Price = int64Ptr(1500)
	}
	require.NoError(t, svc.SaveForms(seller.ID, p.ID, forms))

	rows := loadVariations(t, db, p.ID)
	require.Len(t, rows, 4)
	for _, row := range rows {
		assert.Equal(t, int64(1500), *row.Price)
	}
}

func TestSaveFormsRejectsForeignProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newVariationService(db)
	alice := seedSeller(t, db, "alice@example.com", "Alice Store")
	bob := seedSeller(t, db, "bob@example.com", "Bob Store")
	p := seedTee(t, db, alice, "alice-tee")

	_, err := svc.EditableForms(bob.ID, p.ID)
	assert.ErrorIs(t, err, ErrNotProductOwner)

	err = svc.SaveForms(bob.ID, p.ID, nil)
	assert.ErrorIs(t, err, ErrNotProductOwner)
}

func TestCreateTypeRegeneratesRows(t *testing.T) {
	db := newTestDB(t)
	svc := newVariationService(db)
	seller := seedSeller(t, db, "seller@example.com", "Demo Store")
	p := seedTee(t, db, seller, "classic-tee")

	// type ใหม่ยังไม่มี option → cartesian product ว่าง ทุก row หาย
	vt, err := svc.CreateType(seller.ID, p.ID, &VariationTypeIn{Name: "Material", SortOrder: 3})
	require.NoError(t, err)
	assert.Empty(t, loadVariations(t, db, p.ID))

	// พอมี option แรก rows กลับมาเป็น 2×2×1
	_, err = svc.CreateOption(seller.ID, vt.ID, &OptionIn{Name: "Cotton", SortOrder: 1})
	require.NoError(t, err)
	assert.Len(t, loadVariations(t, db, p.ID), 4)
}
