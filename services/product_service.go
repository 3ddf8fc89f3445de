package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chidough14/laravel-react-ecomm/entity"
	"github.com/chidough14/laravel-react-ecomm/repository"

	"gorm.io/gorm"
)

type ProductService struct {
	DB       *gorm.DB
	Repo     *repository.ProductRepository
	UserRepo *repository.UserRepository
}

func NewProductService(db *gorm.DB, repo *repository.ProductRepository, ur *repository.UserRepository) *ProductService {
	return &ProductService{DB: db, Repo: repo, UserRepo: ur}
}

func (s *ProductService) ListPublished(limit int) ([]entity.Product, error) {
	return s.Repo.ListPublished(limit)
}

func (s *ProductService) GetBySlug(slug string) (*entity.Product, error) {
	p, err := s.Repo.FindPublishedBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

// RegisterVendor เปิดร้านให้ user: สร้าง Vendor profile + อัปเกรด role
func (s *ProductService) RegisterVendor(userID uint, storeName string) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.Vendor{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrVendorExists
		}
		vendor = entity.Vendor{UserID: userID, StoreName: strings.TrimSpace(storeName)}
		if err := tx.Create(&vendor).Error; err != nil {
			return err
		}
		return tx.Model(&entity.User{}).Where("id = ?", userID).Update("role", "vendor").Error
	})
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

type ProductIn struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"min=0"`
	Quantity    int    `json:"quantity" binding:"min=0"`
	Status      string `json:"status"`
	Picture     string `json:"picture"`
}

func (s *ProductService) CreateProduct(userID uint, in *ProductIn) (*entity.Product, error) {
	status := in.Status
	if status == "" {
		status = entity.ProductStatusDraft
	}
	p := &entity.Product{
		Title:       in.Title,
		Slug:        Slugify(in.Title),
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Status:      status,
		Picture:     in.Picture,
		UserID:      userID,
	}
	if err := s.Repo.Create(p); err != nil {
		// slug ชนกัน → เติม id ต่อท้ายให้ unique
		p.Slug = fmt.Sprintf("%s-%d", p.Slug, userID)
		if err := s.Repo.Create(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (s *ProductService) UpdateProduct(userID, productID uint, in *ProductIn) (*entity.Product, error) {
	p, err := s.ownedProduct(userID, productID)
	if err != nil {
		return nil, err
	}
	p.Title = in.Title
	p.Description = in.Description
	p.Price = in.Price
	p.Quantity = in.Quantity
	if in.Status != "" {
		p.Status = in.Status
	}
	if in.Picture != "" {
		p.Picture = in.Picture
	}
	if err := s.Repo.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) ListForVendor(userID uint) ([]entity.Product, error) {
	return s.Repo.ListForVendor(userID)
}

func (s *ProductService) ownedProduct(userID, productID uint) (*entity.Product, error) {
	p, err := s.Repo.FindWithVariations(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrNotProductOwner
	}
	return p, nil
}

// Slugify แปลง title เป็น slug แบบง่าย (ตัวพิมพ์เล็ก, ขีดกลาง)
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
