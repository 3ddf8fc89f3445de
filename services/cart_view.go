package services

import (
	"log"

	"github.com/chidough14/laravel-react-ecomm/entity"
)

type OptionTypeInfo struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type SelectedOption struct {
	ID   uint           `json:"id"`
	Name string         `json:"name"`
	Type OptionTypeInfo `json:"type"`
}

type SellerInfo struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CartItemView struct {
	ID        string             `json:"id"`
	ProductID uint               `json:"product_id"`
	Title     string             `json:"title"`
	Slug      string             `json:"slug"`
	Price     int64              `json:"price"`
	Quantity  int                `json:"quantity"`
	OptionIDs entity.OptionIDMap `json:"option_ids"`
	Options   []SelectedOption   `json:"options"`
	Image     string             `json:"image"`
	Seller    SellerInfo         `json:"user"`
}

type SellerGroup struct {
	Seller   SellerInfo     `json:"user"`
	Items    []CartItemView `json:"items"`
	Subtotal int64          `json:"subtotal"`
}

// CartQuery สร้าง view ของ cart หนึ่ง request: อ่าน lines ดิบจาก store
// แล้ว hydrate ด้วยข้อมูล product/option ปัจจุบัน ผลถูก memoize ไว้ใน
// instance เพราะหนึ่ง request อาจเรียกหลายครั้ง (badge + หน้า cart เต็ม)
type CartQuery struct {
	svc    *CartService
	store  CartStore
	items  []CartItemView
	loaded bool
}

func (s *CartService) NewQuery(store CartStore) *CartQuery {
	return &CartQuery{svc: s, store: store}
}

// Items builds the enriched view at most once per query. Storage trouble on
// this read path yields an empty cart, not an error — the page must render.
func (q *CartQuery) Items() []CartItemView {
	if q.loaded {
		return q.items
	}
	q.loaded = true

	items, err := q.build()
	if err != nil {
		log.Printf("cart view: %v", err)
		q.items = []CartItemView{}
		return q.items
	}
	q.items = items
	return q.items
}

func (q *CartQuery) build() ([]CartItemView, error) {
	lines, err := q.store.List()
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return []CartItemView{}, nil
	}

	// two bulk lookups: products (+seller) and options (+type, images)
	productIDs := make([]uint, 0, len(lines))
	seenProduct := make(map[uint]bool, len(lines))
	var optionIDs []uint
	seenOption := make(map[uint]bool)
	for _, line := range lines {
		if !seenProduct[line.ProductID] {
			seenProduct[line.ProductID] = true
			productIDs = append(productIDs, line.ProductID)
		}
		for _, optionID := range line.OptionIDs {
			if !seenOption[optionID] {
				seenOption[optionID] = true
				optionIDs = append(optionIDs, optionID)
			}
		}
	}

	products, err := q.svc.ProductRepo.FindPublishedByIDs(productIDs)
	if err != nil {
		return nil, err
	}
	productByID := make(map[uint]*entity.Product, len(products))
	for i := range products {
		productByID[products[i].ID] = &products[i]
	}

	options, err := q.svc.VariationRepo.FindOptionsByIDs(optionIDs)
	if err != nil {
		return nil, err
	}
	optionByID := make(map[uint]*entity.VariationTypeOption, len(options))
	for i := range options {
		optionByID[options[i].ID] = &options[i]
	}

	items := make([]CartItemView, 0, len(lines))
	for _, line := range lines {
		p, ok := productByID[line.ProductID]
		if !ok {
			// product deleted/unpublished after being added — skip the line,
			// the rest of the cart still renders
			continue
		}

		var selected []SelectedOption
		image := ""
		for _, typeID := range line.OptionIDs.TypeIDs() {
			opt, ok := optionByID[line.OptionIDs[typeID]]
			if !ok {
				continue // stale option reference
			}
			if image == "" {
				image = opt.FirstImage()
			}
			selected = append(selected, SelectedOption{
				ID:   opt.ID,
				Name: opt.Name,
				Type: OptionTypeInfo{ID: opt.VariationType.ID, Name: opt.VariationType.Name},
			})
		}
		if image == "" {
			image = p.Picture
		}

		items = append(items, CartItemView{
			ID:        line.ID,
			ProductID: p.ID,
			Title:     p.Title,
			Slug:      p.Slug,
			Price:     line.Price,
			Quantity:  line.Quantity,
			OptionIDs: line.OptionIDs,
			Options:   selected,
			Image:     image,
			Seller:    sellerOf(p),
		})
	}
	return items, nil
}

func sellerOf(p *entity.Product) SellerInfo {
	name := p.User.Name
	if p.User.Vendor != nil && p.User.Vendor.StoreName != "" {
		name = p.User.Vendor.StoreName
	}
	return SellerInfo{ID: p.UserID, Name: name}
}

func (q *CartQuery) TotalQuantity() int {
	total := 0
	for _, item := range q.Items() {
		total += item.Quantity
	}
	return total
}

func (q *CartQuery) TotalPrice() int64 {
	var total int64
	for _, item := range q.Items() {
		total += int64(item.Quantity) * item.Price
	}
	return total
}

// GroupedBySeller จัด items ตาม seller (ลำดับตามที่เจอครั้งแรก) สำหรับ
// checkout ที่จ่ายแยกราย seller
func (q *CartQuery) GroupedBySeller() []SellerGroup {
	var groups []SellerGroup
	index := make(map[uint]int)
	for _, item := range q.Items() {
		i, ok := index[item.Seller.ID]
		if !ok {
			i = len(groups)
			index[item.Seller.ID] = i
			groups = append(groups, SellerGroup{Seller: item.Seller})
		}
		groups[i].Items = append(groups[i].Items, item)
		groups[i].Subtotal += int64(item.Quantity) * item.Price
	}
	return groups
}
