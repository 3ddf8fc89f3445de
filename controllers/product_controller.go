package controllers

import (
	"errors"
	"strconv"

	"github.com/chidough14/laravel-react-ecomm/pkg/resp"
	"github.com/chidough14/laravel-react-ecomm/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Svc *services.ProductService
}

func NewProductController(s *services.ProductService) *ProductController {
	return &ProductController{Svc: s}
}

// GET /products
func (ctl *ProductController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	products, err := ctl.Svc.ListPublished(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": products})
}

// GET /products/:slug — หน้า product พร้อม variation types/options/variations
func (ctl *ProductController) Detail(c *gin.Context) {
	p, err := ctl.Svc.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}
