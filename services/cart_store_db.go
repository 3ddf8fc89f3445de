package services

import (
	"strconv"

	"github.com/chidough14/laravel-react-ecomm/entity"
	"github.com/chidough14/laravel-react-ecomm/repository"
)

// DBCartStore เก็บ cart ของ user ที่ login แล้วเป็น rows ใน DB
type DBCartStore struct {
	repo   *repository.CartRepository
	userID uint
}

func (s *DBCartStore) Add(productID uint, quantity int, price int64, optionIDs entity.OptionIDMap) error {
	return s.repo.AddOrIncrement(s.userID, productID, quantity, price, optionIDs)
}

func (s *DBCartStore) UpdateQuantity(productID uint, quantity int, optionIDs entity.OptionIDMap) error {
	return s.repo.SetQuantity(s.userID, productID, quantity, optionIDs)
}

func (s *DBCartStore) Remove(productID uint, optionIDs entity.OptionIDMap) error {
	return s.repo.Remove(s.userID, productID, optionIDs)
}

func (s *DBCartStore) List() ([]CartLine, error) {
	items, err := s.repo.ListForUser(s.userID)
	if err != nil {
		return nil, err
	}
	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, CartLine{
			ID:        strconv.FormatUint(uint64(item.ID), 10),
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			OptionIDs: item.OptionIDs,
		})
	}
	return lines, nil
}
