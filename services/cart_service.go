package services

import (
	"errors"

	"github.com/chidough14/laravel-react-ecomm/entity"
	"github.com/chidough14/laravel-react-ecomm/repository"

	"gorm.io/gorm"
)

const (
	CartCookieName   = "cart_items"
	CartCookieMaxAge = 365 * 24 * 60 * 60 // 1 year
)

// CartLine คือ entry ดิบใน cart ยังไม่ enrich (นั่นเป็นงานของ CartQuery)
type CartLine struct {
	ID        string
	ProductID uint
	Quantity  int
	Price     int64
	OptionIDs entity.OptionIDMap
}

// CartStore คือ contract เดียวของ cart ทั้งสอง backend:
// user ที่ login แล้วเก็บลง DB, guest เก็บลง cookie ฝั่ง client
// ชั้นอื่น (pricing, CartQuery) ห้าม branch ตาม backend
type CartStore interface {
	Add(productID uint, quantity int, price int64, optionIDs entity.OptionIDMap) error
	UpdateQuantity(productID uint, quantity int, optionIDs entity.OptionIDMap) error
	Remove(productID uint, optionIDs entity.OptionIDMap) error
	List() ([]CartLine, error)
}

type CartService struct {
	DB            *gorm.DB
	CartRepo      *repository.CartRepository
	ProductRepo   *repository.ProductRepository
	VariationRepo *repository.VariationRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.ProductRepository, vr *repository.VariationRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, ProductRepo: pr, VariationRepo: vr}
}

// StoreFor เลือก backend ตาม identity ของ request นี้
func (s *CartService) StoreFor(userID uint, guestCart string) CartStore {
	if userID != 0 {
		return &DBCartStore{repo: s.CartRepo, userID: userID}
	}
	return DecodeGuestCart(guestCart)
}

// AddItem resolves the unit price for the selection and delegates to the
// store. Validation failures abort before any mutation.
func (s *CartService) AddItem(store CartStore, productID uint, quantity int, optionIDs entity.OptionIDMap) error {
	if quantity <= 0 {
		quantity = 1
	}

	p, err := s.ProductRepo.FindPublishedByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	// types ที่ไม่ได้เลือกใช้ option แรกของ type เป็น default
	optionIDs = CompleteSelection(p, optionIDs)

	price, _, err := ResolvePrice(p, optionIDs)
	if err != nil {
		return err
	}

	return store.Add(productID, quantity, price, optionIDs)
}

// UpdateItemQuantity sets the quantity of an existing line; a missing line is
// a successful no-op.
func (s *CartService) UpdateItemQuantity(store CartStore, productID uint, quantity int, optionIDs entity.OptionIDMap) error {
	return store.UpdateQuantity(productID, quantity, optionIDs)
}

// RemoveItem deletes a line; a missing line is a successful no-op.
func (s *CartService) RemoveItem(store CartStore, productID uint, optionIDs entity.OptionIDMap) error {
	return store.Remove(productID, optionIDs)
}
