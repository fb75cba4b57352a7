package controllers

import (
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type CouponController struct{ Pricing *services.PricingService }

func NewCouponController(p *services.PricingService) *CouponController {
	return &CouponController{Pricing: p}
}

// GET /coupons
func (h *CouponController) List(c *gin.Context) {
	coupons, err := h.Pricing.ListCoupons()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": coupons})
}
