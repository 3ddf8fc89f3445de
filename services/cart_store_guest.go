package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"github.com/chidough14/laravel-react-ecomm/entity"

	"github.com/google/uuid"
)

type guestCartLine struct {
	ID        string             `json:"id"`
	ProductID uint               `json:"product_id"`
	Quantity  int                `json:"quantity"`
	Price     int64              `json:"price"`
	OptionIDs entity.OptionIDMap `json:"option_ids"`
}

// GuestCartStore เก็บ cart ของ guest ใน cookie ฝั่ง client:
// decode ตอนเข้า request, mutate ใน memory, controller เขียนกลับตอนจบ
// สอง tab พร้อมกันอาจเขียนทับกัน — ยอมรับเป็นข้อจำกัดของ backend นี้
type GuestCartStore struct {
	items map[string]guestCartLine // keyed by "<productID>_<optionSetKey>"
	dirty bool
}

// DecodeGuestCart parses the cart cookie. A corrupt payload becomes an empty
// cart so the page still renders.
func DecodeGuestCart(raw string) *GuestCartStore {
	s := &GuestCartStore{items: map[string]guestCartLine{}}
	if raw == "" {
		return s
	}
	if err := json.Unmarshal([]byte(raw), &s.items); err != nil {
		log.Printf("guest cart: discarding corrupt cookie: %v", err)
		s.items = map[string]guestCartLine{}
	}
	return s
}

func guestLineKey(productID uint, optionIDs entity.OptionIDMap) string {
	return fmt.Sprintf("%d_%s", productID, optionIDs.Key())
}

func (s *GuestCartStore) Add(productID uint, quantity int, price int64, optionIDs entity.OptionIDMap) error {
	key := guestLineKey(productID, optionIDs)
	if line, ok := s.items[key]; ok {
		// quantity accumulates, price is refreshed to the latest resolution
		line.Quantity += quantity
		line.Price = price
		s.items[key] = line
	} else {
		s.items[key] = guestCartLine{
			ID:        uuid.NewString(),
			ProductID: productID,
			Quantity:  quantity,
			Price:     price,
			OptionIDs: optionIDs,
		}
	}
	s.dirty = true
	return nil
}

func (s *GuestCartStore) UpdateQuantity(productID uint, quantity int, optionIDs entity.OptionIDMap) error {
	key := guestLineKey(productID, optionIDs)
	line, ok := s.items[key]
	if !ok {
		return nil // missing line is a no-op
	}
	if quantity <= 0 {
		delete(s.items, key)
		s.dirty = true
		return nil
	}
	line.Quantity = quantity
	s.items[key] = line
	s.dirty = true
	return nil
}

func (s *GuestCartStore) Remove(productID uint, optionIDs entity.OptionIDMap) error {
	key := guestLineKey(productID, optionIDs)
	if _, ok := s.items[key]; !ok {
		return nil
	}
	delete(s.items, key)
	s.dirty = true
	return nil
}

func (s *GuestCartStore) List() ([]CartLine, error) {
	keys := make([]string, 0, len(s.items))
	for key := range s.items {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]CartLine, 0, len(keys))
	for _, key := range keys {
		line := s.items[key]
		lines = append(lines, CartLine{
			ID:        line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
			OptionIDs: line.OptionIDs,
		})
	}
	return lines, nil
}

// Changed reports whether the cookie needs to be rewritten.
func (s *GuestCartStore) Changed() bool { return s.dirty }

func (s *GuestCartStore) Encode() (string, error) {
	payload, err := json.Marshal(s.items)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
