package services

import (
	"errors"

	"github.com/chidough14/laravel-react-ecomm/entity"

	"gorm.io/gorm"
)

// การแก้ variation types/options ทุกครั้งต้อง regenerate variation rows
// (combination เปลี่ยน) — merge ใน Refresh รักษา override เดิมไว้ให้

type VariationTypeIn struct {
	Name      string `json:"name" binding:"required"`
	Kind      string `json:"kind"`
	SortOrder int    `json:"sortOrder"`
}

type OptionIn struct {
	Name      string               `json:"name" binding:"required"`
	SortOrder int                  `json:"sortOrder"`
	Images    []entity.OptionImage `json:"images"`
}

func (s *VariationService) CreateType(vendorUserID, productID uint, in *VariationTypeIn) (*entity.VariationType, error) {
	p, err := s.ownedProduct(vendorUserID, productID)
	if err != nil {
		return nil, err
	}
	kind := in.Kind
	if kind == "" {
		kind = entity.VariationKindSelect
	}
	vt := &entity.VariationType{
		ProductID: p.ID,
		Name:      in.Name,
		Kind:      kind,
		SortOrder: in.SortOrder,
	}
	if err := s.Repo.CreateType(vt); err != nil {
		return nil, err
	}
	return vt, s.Refresh(p.ID)
}

func (s *VariationService) UpdateType(vendorUserID, typeID uint, in *VariationTypeIn) (*entity.VariationType, error) {
	vt, err := s.ownedType(vendorUserID, typeID)
	if err != nil {
		return nil, err
	}
	vt.Name = in.Name
	if in.Kind != "" {
		vt.Kind = in.Kind
	}
	vt.SortOrder = in.SortOrder
	if err := s.Repo.SaveType(vt); err != nil {
		return nil, err
	}
	return vt, s.Refresh(vt.ProductID)
}

func (s *VariationService) DeleteType(vendorUserID, typeID uint) error {
	vt, err := s.ownedType(vendorUserID, typeID)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteType(vt.ID); err != nil {
		return err
	}
	return s.Refresh(vt.ProductID)
}

func (s *VariationService) CreateOption(vendorUserID, typeID uint, in *OptionIn) (*entity.VariationTypeOption, error) {
	vt, err := s.ownedType(vendorUserID, typeID)
	if err != nil {
		return nil, err
	}
	opt := &entity.VariationTypeOption{
		VariationTypeID: vt.ID,
		Name:            in.Name,
		SortOrder:       in.SortOrder,
		Images:          in.Images,
	}
	if err := s.Repo.CreateOption(opt); err != nil {
		return nil, err
	}
	return opt, s.Refresh(vt.ProductID)
}

func (s *VariationService) UpdateOption(vendorUserID, optionID uint, in *OptionIn) (*entity.VariationTypeOption, error) {
	opt, productID, err := s.ownedOption(vendorUserID, optionID)
	if err != nil {
		return nil, err
	}
	opt.Name = in.Name
	opt.SortOrder = in.SortOrder
	if err := s.Repo.SaveOption(opt); err != nil {
		return nil, err
	}
	return opt, s.Refresh(productID)
}

func (s *VariationService) DeleteOption(vendorUserID, optionID uint) error {
	opt, productID, err := s.ownedOption(vendorUserID, optionID)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteOption(opt.ID); err != nil {
		return err
	}
	return s.Refresh(productID)
}

func (s *VariationService) ownedType(vendorUserID, typeID uint) (*entity.VariationType, error) {
	vt, err := s.Repo.FindType(typeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if _, err := s.ownedProduct(vendorUserID, vt.ProductID); err != nil {
		return nil, err
	}
	return vt, nil
}

func (s *VariationService) ownedOption(vendorUserID, optionID uint) (*entity.VariationTypeOption, uint, error) {
	opt, err := s.Repo.FindOption(optionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrProductNotFound
		}
		return nil, 0, err
	}
	vt, err := s.ownedType(vendorUserID, opt.VariationTypeID)
	if err != nil {
		return nil, 0, err
	}
	return opt, vt.ProductID, nil
}
