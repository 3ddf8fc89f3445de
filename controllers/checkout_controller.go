package controllers

import (
	"github.com/chidough14/laravel-react-ecomm/pkg/resp"
	"github.com/chidough14/laravel-react-ecomm/services"
	"github.com/chidough14/laravel-react-ecomm/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct{ Svc *services.CartService }

func NewCheckoutController(s *services.CartService) *CheckoutController {
	return &CheckoutController{Svc: s}
}

// GET /checkout — ส่ง cart แบบ group ราย seller ให้ flow จ่ายเงินต่อ
// (การจ่ายจริงแยกราย seller อยู่นอก scope ของ service นี้)
func (h *CheckoutController) Show(c *gin.Context) {
	raw, _ := c.Cookie(services.CartCookieName)
	store := h.Svc.StoreFor(utils.CurrentUserID(c), raw)

	q := h.Svc.NewQuery(store)
	resp.OK(c, gin.H{
		"groups":        q.GroupedBySeller(),
		"totalQuantity": q.TotalQuantity(),
		"totalPrice":    q.TotalPrice(),
	})
}
