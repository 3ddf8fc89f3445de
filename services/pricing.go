package services

import (
	"fmt"

	"github.com/chidough14/laravel-react-ecomm/entity"
)

// ResolvePrice หาราคา/จำนวนของ selection หนึ่งชุด:
// เทียบ key ของ selection กับ variation rows ของ product ถ้าเจอใช้ override
// ถ้าไม่เจอ (หรือ selection ว่าง) ใช้ราคา base ของ product — ไม่ใช่ error
func ResolvePrice(p *entity.Product, optionIDs entity.OptionIDMap) (int64, int, error) {
	if len(optionIDs) == 0 {
		return p.Price, p.Quantity, nil
	}

	if err := validateSelection(p, optionIDs); err != nil {
		return 0, 0, err
	}

	key := optionIDs.Key()
	for i := range p.Variations {
		v := &p.Variations[i]
		if entity.OptionSetKey(v.OptionIDs) != key {
			continue
		}
		price, quantity := p.Price, p.Quantity
		if v.Price != nil {
			price = *v.Price
		}
		if v.Quantity != nil {
			quantity = *v.Quantity
		}
		return price, quantity, nil
	}

	// no override row for this combination — base price applies
	return p.Price, p.Quantity, nil
}

// CompleteSelection เติม variation type ที่ user ไม่ได้เลือกด้วย option แรกของ type
// เพื่อให้ราคาและ line identity ที่เก็บลง cart ตรงกันเสมอ
func CompleteSelection(p *entity.Product, optionIDs entity.OptionIDMap) entity.OptionIDMap {
	out := make(entity.OptionIDMap, len(p.VariationTypes))
	for typeID, optionID := range optionIDs {
		out[typeID] = optionID
	}
	for _, vt := range p.VariationTypes {
		if _, ok := out[vt.ID]; ok {
			continue
		}
		if len(vt.Options) == 0 {
			continue
		}
		out[vt.ID] = vt.Options[0].ID
	}
	return out
}

func validateSelection(p *entity.Product, optionIDs entity.OptionIDMap) error {
	for typeID, optionID := range optionIDs {
		var vt *entity.VariationType
		for i := range p.VariationTypes {
			if p.VariationTypes[i].ID == typeID {
				vt = &p.VariationTypes[i]
				break
			}
		}
		if vt == nil {
			return fmt.Errorf("%w: variation type %d", ErrUnknownOption, typeID)
		}

		found := false
		for _, opt := range vt.Options {
			if opt.ID == optionID {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: option %d for type %q", ErrUnknownOption, optionID, vt.Name)
		}
	}
	return nil
}
