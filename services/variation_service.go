package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/chidough14/laravel-react-ecomm/entity"
	"github.com/chidough14/laravel-react-ecomm/repository"

	"gorm.io/gorm"
)

type ComboOption struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Label string `json:"label"` // variation type name
}

// Combination คือ combination หนึ่งชุด: variation type id -> option ที่เลือก
type Combination map[uint]ComboOption

// VariationForm คือ row แบบ editable สำหรับหน้า vendor (load/save ใช้ตัวเดียวกัน)
type VariationForm struct {
	ID       uint                 `json:"id"`
	Options  map[uint]ComboOption `json:"options"` // keyed by variation type id
	Quantity *int                 `json:"quantity"`
	Price    *int64               `json:"price"`
}

// GenerateCombinations สร้าง cartesian product ของทุก variation type:
// เริ่มจาก combination ว่างหนึ่งชุด แล้วขยายด้วย option ของแต่ละ type ทีละชั้น
// type ที่ไม่มี option ทำให้ผลลัพธ์ว่าง (cartesian product ปกติ)
func GenerateCombinations(types []entity.VariationType) []Combination {
	if len(types) == 0 {
		return nil
	}

	result := []Combination{{}}
	for _, vt := range types {
		temp := make([]Combination, 0, len(result)*len(vt.Options))
		for _, opt := range vt.Options {
			// add the current option to all existing combinations
			for _, combo := range result {
				next := make(Combination, len(combo)+1)
				for typeID, chosen := range combo {
					next[typeID] = chosen
				}
				next[vt.ID] = ComboOption{ID: opt.ID, Name: opt.Name, Label: vt.Name}
				temp = append(temp, next)
			}
		}
		result = temp
	}
	return result
}

// MergeWithExisting คือ load transform ของหน้า variations:
// generate ทุก combination แล้ว match กับ row เดิมด้วย option-set key
// เจอ → คง id/quantity/price เดิม (override ของ vendor ไม่หาย)
// ไม่เจอ → ใช้ default จาก product และถือเป็น row ใหม่ (id = 0)
// row เดิมที่ key ไม่อยู่ใน combination ชุดใหม่ถูกรายงานกลับเป็น stale
func MergeWithExisting(p *entity.Product, existing []entity.ProductVariation) ([]VariationForm, []entity.ProductVariation) {
	combos := GenerateCombinations(p.VariationTypes)

	byKey := make(map[string]*entity.ProductVariation, len(existing))
	for i := range existing {
		byKey[entity.OptionSetKey(existing[i].OptionIDs)] = &existing[i]
	}

	used := make(map[string]bool, len(existing))
	forms := make([]VariationForm, 0, len(combos))
	for _, combo := range combos {
		ids := make([]uint, 0, len(combo))
		for _, chosen := range combo {
			ids = append(ids, chosen.ID)
		}
		key := entity.OptionSetKey(ids)

		form := VariationForm{Options: combo}
		if row, ok := byKey[key]; ok {
			form.ID = row.ID
			form.Quantity = row.Quantity
			form.Price = row.Price
			used[key] = true
		} else {
			quantity, price := p.Quantity, p.Price
			form.Quantity = &quantity
			form.Price = &price
		}
		forms = append(forms, form)
	}

	var stale []entity.ProductVariation
	for i := range existing {
		if !used[entity.OptionSetKey(existing[i].OptionIDs)] {
			stale = append(stale, existing[i])
		}
	}
	return forms, stale
}

// CollectRows คือ save transform: แปลง form กลับเป็น canonical rows
// (option ids เรียงตามลำดับ variation type ของ product)
func CollectRows(p *entity.Product, forms []VariationForm) ([]entity.ProductVariation, error) {
	rows := make([]entity.ProductVariation, 0, len(forms))
	for _, form := range forms {
		ids := make([]uint, 0, len(p.VariationTypes))
		for i := range p.VariationTypes {
			vt := &p.VariationTypes[i]
			chosen, ok := form.Options[vt.ID]
			if !ok {
				return nil, fmt.Errorf("%w: type %q", ErrIncompleteVariation, vt.Name)
			}
			belongs := false
			for _, opt := range vt.Options {
				if opt.ID == chosen.ID {
					belongs = true
					break
				}
			}
			if !belongs {
				return nil, fmt.Errorf("%w: option %d for type %q", ErrUnknownOption, chosen.ID, vt.Name)
			}
			ids = append(ids, chosen.ID)
		}

		row := entity.ProductVariation{
			ProductID: p.ID,
			OptionIDs: ids,
			Quantity:  form.Quantity,
			Price:     form.Price,
		}
		row.ID = form.ID
		rows = append(rows, row)
	}
	return rows, nil
}

type VariationService struct {
	DB          *gorm.DB
	Repo        *repository.VariationRepository
	ProductRepo *repository.ProductRepository
}

func NewVariationService(db *gorm.DB, repo *repository.VariationRepository, pr *repository.ProductRepository) *VariationService {
	return &VariationService{DB: db, Repo: repo, ProductRepo: pr}
}

// EditableForms คืน rows แบบ merge แล้วสำหรับหน้าแก้ราคา/จำนวนของ vendor
func (s *VariationService) EditableForms(vendorUserID, productID uint) ([]VariationForm, error) {
	p, err := s.ownedProduct(vendorUserID, productID)
	if err != nil {
		return nil, err
	}
	forms, stale := MergeWithExisting(p, p.Variations)
	if len(stale) > 0 {
		log.Printf("product %d: %d variation rows no longer match any combination", p.ID, len(stale))
	}
	return forms, nil
}

// SaveForms upserts the submitted rows and deletes rows whose combination no
// longer exists (stale from removed options).
func (s *VariationService) SaveForms(vendorUserID, productID uint, forms []VariationForm) error {
	p, err := s.ownedProduct(vendorUserID, productID)
	if err != nil {
		return err
	}
	rows, err := CollectRows(p, forms)
	if err != nil {
		return err
	}
	return s.persist(p, rows)
}

// Refresh regenerates the variation rows after the product's variation types
// or options changed, preserving existing overrides by option-set key.
func (s *VariationService) Refresh(productID uint) error {
	p, err := s.ProductRepo.FindWithVariations(productID)
	if err != nil {
		return err
	}
	forms, _ := MergeWithExisting(p, p.Variations)
	rows, err := CollectRows(p, forms)
	if err != nil {
		return err
	}
	return s.persist(p, rows)
}

func (s *VariationService) persist(p *entity.Product, rows []entity.ProductVariation) error {
	_, stale := MergeWithExisting(p, p.Variations)

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Upsert(tx, rows); err != nil {
			return err
		}
		if len(stale) == 0 {
			return nil
		}
		staleIDs := make([]uint, 0, len(stale))
		for _, row := range stale {
			staleIDs = append(staleIDs, row.ID)
			log.Printf("product %d: dropping stale variation %d (options %v)", p.ID, row.ID, row.OptionIDs)
		}
		return s.Repo.Delete(tx, staleIDs)
	})
}

func (s *VariationService) ownedProduct(vendorUserID, productID uint) (*entity.Product, error) {
	p, err := s.ProductRepo.FindWithVariations(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if p.UserID != vendorUserID {
		return nil, ErrNotProductOwner
	}
	return p, nil
}
