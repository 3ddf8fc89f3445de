package controllers

import (
	"strconv"

	"github.com/chidough14/laravel-react-ecomm/pkg/resp"
	"github.com/chidough14/laravel-react-ecomm/services"
	"github.com/chidough14/laravel-react-ecomm/utils"

	"github.com/gin-gonic/gin"
)

type VariationController struct {
	Svc *services.VariationService
}

func NewVariationController(s *services.VariationService) *VariationController {
	return &VariationController{Svc: s}
}

// GET /vendor/products/:id/variations — ทุก combination แบบ merge กับ row เดิม
// (override ที่เคยตั้งไว้ยังอยู่ combination ใหม่ขึ้น default ของ product)
func (ctl *VariationController) Forms(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	forms, err := ctl.Svc.EditableForms(utils.CurrentUserID(c), uint(id))
	if err != nil {
		writeVendorError(c, err)
		return
	}
	resp.OK(c, gin.H{"variations": forms})
}

// PUT /vendor/products/:id/variations
func (ctl *VariationController) Save(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		Variations []services.VariationForm `json:"variations" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Svc.SaveForms(utils.CurrentUserID(c), uint(id), req.Variations); err != nil {
		writeVendorError(c, err)
		return
	}
	resp.OK(c, gin.H{"saved": true})
}

// POST /vendor/products/:id/variation-types
func (ctl *VariationController) CreateType(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.VariationTypeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	vt, err := ctl.Svc.CreateType(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		writeVendorError(c, err)
		return
	}
	resp.Created(c, vt)
}

// PATCH /vendor/variation-types/:id
func (ctl *VariationController) UpdateType(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.VariationTypeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	vt, err := ctl.Svc.UpdateType(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		writeVendorError(c, err)
		return
	}
	resp.OK(c, vt)
}

// DELETE /vendor/variation-types/:id
func (ctl *VariationController) DeleteType(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.DeleteType(utils.CurrentUserID(c), uint(id)); err != nil {
		writeVendorError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /vendor/variation-types/:id/options
func (ctl *VariationController) CreateOption(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.OptionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	opt, err := ctl.Svc.CreateOption(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		writeVendorError(c, err)
		return
	}
	resp.Created(c, opt)
}

// PATCH /vendor/options/:id
func (ctl *VariationController) UpdateOption(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req services.OptionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	opt, err := ctl.Svc.UpdateOption(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		writeVendorError(c, err)
		return
	}
	resp.OK(c, opt)
}

// DELETE /vendor/options/:id
func (ctl *VariationController) DeleteOption(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.DeleteOption(utils.CurrentUserID(c), uint(id)); err != nil {
		writeVendorError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
