package controllers

import (
	"errors"
	"strconv"

	"github.com/chidough14/laravel-react-ecomm/pkg/resp"
	"github.com/chidough14/laravel-react-ecomm/services"
	"github.com/chidough14/laravel-react-ecomm/utils"

	"github.com/gin-gonic/gin"
)

type VendorController struct {
	Svc *services.ProductService
}

func NewVendorController(s *services.ProductService) *VendorController {
	return &VendorController{Svc: s}
}

// POST /vendor/register (user ที่ login แล้วเปิดร้าน)
func (ctl *VendorController) Register(c *gin.Context) {
	var req struct {
		StoreName string `json:"storeName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	vendor, err := ctl.Svc.RegisterVendor(utils.CurrentUserID(c), req.StoreName)
	if err != nil {
		if errors.Is(err, services.ErrVendorExists) {
			resp.BadRequest(c, "vendor profile already exists")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, vendor)
}

// GET /vendor/products
func (ctl *VendorController) Products(c *gin.Context) {
	products, err := ctl.Svc.ListForVendor(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": products})
}

// POST /vendor/products
func (ctl *VendorController) CreateProduct(c *gin.Context) {
	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := ctl.Svc.CreateProduct(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, p)
}

// PATCH /vendor/products/:id
func (ctl *VendorController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := ctl.Svc.UpdateProduct(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		writeVendorError(c, err)
		return
	}
	resp.OK(c, p)
}

func writeVendorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		resp.NotFound(c, "product not found")
	case errors.Is(err, services.ErrNotProductOwner):
		resp.Forbidden(c, "not your product")
	case errors.Is(err, services.ErrUnknownOption), errors.Is(err, services.ErrIncompleteVariation):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
