package controllers

import (
	"errors"
	"log"

	"github.com/chidough14/laravel-react-ecomm/entity"
	"github.com/chidough14/laravel-react-ecomm/pkg/resp"
	"github.com/chidough14/laravel-react-ecomm/services"
	"github.com/chidough14/laravel-react-ecomm/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// CartLineIn ใช้ร่วมกันทั้ง add/update/remove (ระบุ line ด้วย product + options)
type CartLineIn struct {
	ProductID uint               `json:"productId" binding:"required"`
	Quantity  int                `json:"quantity"`
	OptionIDs entity.OptionIDMap `json:"optionIds"`
}

// storeFor อ่าน identity ของ request (JWT ถ้ามี ไม่งั้น guest cookie)
// แล้วเลือก cart backend
func (h *CartController) storeFor(c *gin.Context) services.CartStore {
	raw, _ := c.Cookie(services.CartCookieName)
	return h.Svc.StoreFor(utils.CurrentUserID(c), raw)
}

// writeGuestCart เขียน state ของ guest backend กลับลง cookie ตอนจบ request
func (h *CartController) writeGuestCart(c *gin.Context, store services.CartStore) {
	gs, ok := store.(*services.GuestCartStore)
	if !ok || !gs.Changed() {
		return
	}
	payload, err := gs.Encode()
	if err != nil {
		log.Printf("guest cart: encode failed: %v", err)
		return
	}
	c.SetCookie(services.CartCookieName, payload, services.CartCookieMaxAge, "/", "", false, true)
}

// GET /cart
func (h *CartController) Index(c *gin.Context) {
	q := h.Svc.NewQuery(h.storeFor(c))
	resp.OK(c, gin.H{
		"items":         q.Items(),
		"groups":        q.GroupedBySeller(),
		"totalQuantity": q.TotalQuantity(),
		"totalPrice":    q.TotalPrice(),
	})
}

// GET /cart/count — badge บน navbar
func (h *CartController) Count(c *gin.Context) {
	q := h.Svc.NewQuery(h.storeFor(c))
	resp.OK(c, gin.H{"totalQuantity": q.TotalQuantity()})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req CartLineIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	store := h.storeFor(c)
	if err := h.Svc.AddItem(store, req.ProductID, req.Quantity, req.OptionIDs); err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			resp.NotFound(c, "product not found")
		case errors.Is(err, services.ErrUnknownOption):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	h.writeGuestCart(c, store)
	resp.Created(c, gin.H{"productId": req.ProductID})
}

// PATCH /cart/items — ตั้งจำนวนของ line เดิม; ไม่มี line → no-op
func (h *CartController) UpdateQty(c *gin.Context) {
	var req CartLineIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	store := h.storeFor(c)
	if err := h.Svc.UpdateItemQuantity(store, req.ProductID, req.Quantity, req.OptionIDs); err != nil {
		resp.ServerError(c, err)
		return
	}
	h.writeGuestCart(c, store)
	resp.OK(c, gin.H{"productId": req.ProductID})
}

// DELETE /cart/items
func (h *CartController) Remove(c *gin.Context) {
	var req CartLineIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	store := h.storeFor(c)
	if err := h.Svc.RemoveItem(store, req.ProductID, req.OptionIDs); err != nil {
		resp.ServerError(c, err)
		return
	}
	h.writeGuestCart(c, store)
	resp.OK(c, gin.H{"productId": req.ProductID})
}
