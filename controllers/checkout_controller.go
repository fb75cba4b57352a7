package controllers

import (
	"errors"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct{ Svc *services.CheckoutService }

func NewCheckoutController(s *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Svc: s}
}

// POST /checkout
func (h *CheckoutController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Checkout(uid, &req)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.As(err, &ve):
			resp.FieldError(c, ve.Field, ve.Msg)
		case errors.Is(err, services.ErrNoAddressSelected):
			resp.FieldError(c, "addressId", err.Error())
		case errors.Is(err, services.ErrCartEmpty):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrPaymentFailed):
			// cart untouched; user retries checkout from scratch
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"id": order.ID, "total": order.Total, "status": order.Status,
		"estimatedDelivery": order.EstimatedDelivery})
}
