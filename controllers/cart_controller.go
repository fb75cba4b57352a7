package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct {
	Svc     *services.CartService
	Pricing *services.PricingService
}

func NewCartController(s *services.CartService, p *services.PricingService) *CartController {
	return &CartController{Svc: s, Pricing: p}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	view, err := h.Svc.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}

// GET /cart/conflict?restaurantId=
// UI pre-check before an add, so it can offer "clear cart and start over".
func (h *CartController) Conflict(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	restID, _ := strconv.Atoi(c.Query("restaurantId"))
	if restID <= 0 {
		resp.BadRequest(c, "restaurantId is required")
		return
	}
	conflict, err := h.Svc.IsItemFromDifferentRestaurant(uid, uint(restID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"conflict": conflict})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(uid, &req); err != nil {
		if errors.Is(err, services.ErrDifferentRestaurant) {
			resp.Conflict(c, err.Error())
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"ok": true})
}

// PATCH /cart/items/qty
func (h *CartController) UpdateQty(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var body struct {
		MenuID uint `json:"menuId" binding:"required"`
		Qty    int  `json:"qty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQty(uid, body.MenuID, body.Qty); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /cart/items
func (h *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var body struct {
		MenuID uint `json:"menuId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.RemoveItem(uid, body.MenuID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if err := h.Svc.Clear(uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// POST /cart/coupon
func (h *CartController) ApplyCoupon(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var body struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	coupon, discount, err := h.Pricing.ApplyToCart(uid, body.Code)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownCoupon),
			errors.Is(err, services.ErrMinimumNotMet),
			errors.Is(err, services.ErrCartEmpty):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"coupon": coupon, "discount": discount})
}

// DELETE /cart/coupon
func (h *CartController) RemoveCoupon(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if err := h.Pricing.RemoveFromCart(uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// GET /cart/breakdown?tip=
func (h *CartController) Breakdown(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	tip, _ := strconv.ParseInt(c.DefaultQuery("tip", "0"), 10, 64)

	b, err := h.Pricing.BreakdownForCart(uid, tip)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTip) {
			resp.FieldError(c, "tip", err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, b)
}
