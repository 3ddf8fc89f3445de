package services

import (
	"testing"

	"github.com/chidough14/laravel-react-ecomm/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"
)

// countingStore นับจำนวนครั้งที่ List ถูกเรียก ไว้พิสูจน์ memoization
type countingStore struct {
	CartStore
	listCalls int
}

func (c *countingStore) List() ([]CartLine, error) {
	c.listCalls++
	return c.CartStore.List()
}

func seedPlainProduct(t *testing.T, db *gorm.DB, seller *entity.User, title, slug string, price int64) *entity.Product {
	t.Helper()
	p := entity.Product{
		Title:    title,
		Slug:     slug,
		Price:    price,
		Quantity: 10,
		Status:   entity.ProductStatusPublished,
		Picture:  "/uploads/" + slug + ".jpg",
		UserID:   seller.ID,
	}
	require.NoError(t, db.Create(&p).Error)
	return &p
}

func TestCartQueryTotals(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	seller := seedSeller(t, db, "seller@example.com", "Demo Store")
	p := seedTee(t, db, seller, "classic-tee")

	store := svc.StoreFor(0, "")
	require.NoError(t, svc.AddItem(store, p.ID, 2, teeSelection(t, p, "Red", "S")))  // 2 × 999
	require.NoError(t, svc.AddItem(store, p.ID, 3, teeSelection(t, p, "Blue", "M"))) // 3 × 1200

	q := svc.NewQuery(store)
	assert.Equal(t, 5, q.TotalQuantity())
	assert.Equal(t, int64(2*999+3*1200), q.TotalPrice())

	// total = ผลรวม subtotal ของทุก group เสมอ
	var sum int64
	for _, g := range q.GroupedBySeller() {
		sum += g.Subtotal
	}
	assert.Equal(t, q.TotalPrice(), sum)
}

func TestCartQueryEnrichesLines(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	seller := seedSeller(t, db, "seller@example.com", "Demo Store")
	p := seedTee(t, db, seller, "classic-tee")

	store := svc.StoreFor(0, "")
	require.NoError(t, svc.AddItem(store, p.ID, 1, teeSelection(t, p, "Red", "S")))

	items := svc.NewQuery(store).Items()
	require.Len(t, items, 1)
	item := items[0]

	assert.Equal(t, "Classic Tee", item.Title)
	assert.Equal(t, "classic-tee", item.Slug)
	assert.Equal(t, "Demo Store", item.Seller.Name)
	assert.Equal(t, seller.ID, item.Seller.ID)

	// options เรียงตาม type id พร้อมชื่อ type สำหรับ render
	require.Len(t, item.Options, 2)
	assert.Equal(t, "Red", item.Options[0].Name)
	assert.Equal(t, "Color", item.Options[0].Type.Name)
	assert.Equal(t, "S", item.Options[1].Name)
	assert.Equal(t, "Size", item.Options[1].Type.Name)

	// Red มี image → ใช้ thumb ของ option
	assert.Equal(t, "/uploads/red-sm.jpg", item.Image)
}

func TestCartQueryImageFallsBackToProductPicture(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	seller := seedSeller(t, db, "seller@example.com", "Demo Store")
	p := seedTee(t, db, seller, "classic-tee")

	store := svc.StoreFor(0, "")
	require.NoError(t, svc.AddItem(store, p.ID, 1, teeSelection(t, p, "Blue", "M")))

	items := svc.NewQuery(store).Items()
	require.Len(t, items, 1)
	assert.Equal(t, "/uploads/tee.jpg", items[0].Image)
}

func TestCartQuerySkipsVanishedProducts(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	seller := seedSeller(t, db, "seller@example.com", "Demo Store")
	tee := seedTee(t, db, seller, "classic-tee")
	mug := seedPlainProduct(t, db, seller, "Mug", "mug", 500)

	store := svc.StoreFor(0, "")
	require.NoError(t, svc.AddItem(store, tee.ID, 1, teeSelection(t, tee, "Red", "S")))
	require.NoError(t, svc.AddItem(store, mug.ID, 2, nil))

	// product หายหลัง add — line ต้องถูกข้าม ไม่ใช่ทำทั้งหน้า fail
	require.NoError(t, db.Delete(&entity.Product{}, tee.ID).Error)

	q := svc.NewQuery(store)
	items := q.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Mug", items[0].Title)
	assert.Equal(t, 2, q.TotalQuantity())
	assert.Equal(t, int64(1000), q.TotalPrice())
}

func TestGroupedBySellerKeepsFirstSeenOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	alice := seedSeller(t, db, "alice@example.com", "Alice Store")
	bob := seedSeller(t, db, "bob@example.com", "Bob Store")
	aliceTee := seedTee(t, db, alice, "alice-tee")
	bobMug := seedPlainProduct(t, db, bob, "Bob Mug", "bob-mug", 500)
	aliceMug := seedPlainProduct(t, db, alice, "Alice Mug", "alice-mug", 700)

	store := svc.StoreFor(0, "")
	require.NoError(t, svc.AddItem(store, aliceTee.ID, 1, teeSelection(t, aliceTee, "Red", "S")))
	require.NoError(t, svc.AddItem(store, bobMug.ID, 1, nil))
	require.NoError(t, svc.AddItem(store, aliceMug.ID, 1, nil))

	groups := svc.NewQuery(store).GroupedBySeller()
	require.Len(t, groups, 2)

	assert.Equal(t, "Alice Store", groups[0].Seller.Name)
	require.Len(t, groups[0].Items, 2)
	assert.Equal(t, int64(999+700), groups[0].Subtotal)

	assert.Equal(t, "Bob Store", groups[1].Seller.Name)
	require.Len(t, groups[1].Items, 1)
	assert.Equal(t, int64(500), groups[1].Subtotal)
}

func TestCartQueryMemoizesItems(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	seller := seedSeller(t, db, "seller@example.com", "Demo Store")
	p := seedTee(t, db, seller, "classic-tee")

	inner := svc.StoreFor(0, "")
	require.NoError(t, svc.AddItem(inner, p.ID, 1, teeSelection(t, p, "Red", "S")))

	counted := &countingStore{CartStore: inner}
	q := svc.NewQuery(counted)

	q.TotalQuantity()
	q.TotalPrice()
	q.Items()
	q.GroupedBySeller()

	assert.Equal(t, 1, counted.listCalls)
}

func TestCartQueryEmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	q := svc.NewQuery(svc.StoreFor(0, ""))
	assert.Empty(t, q.Items())
	assert.Zero(t, q.TotalQuantity())
	assert.Zero(t, q.TotalPrice())
	assert.Empty(t, q.GroupedBySeller())
}
