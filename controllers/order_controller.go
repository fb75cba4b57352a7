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

type OrderController struct {
	Svc      *services.OrderService
	Tracking *services.TrackingService
}

func NewOrderController(s *services.OrderService, t *services.TrackingService) *OrderController {
	return &OrderController{Svc: s, Tracking: t}
}

// GET /orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := oc.Svc.ListForUser(uid, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	d, err := oc.Svc.DetailForUser(uid, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, d)
}

// GET /orders/:id/track
// Opening the tracking view re-arms the advance timer for a resumed order.
func (oc *OrderController) Track(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	view, err := oc.Svc.Track(uid, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	if !view.Status.IsTerminal() {
		oc.Tracking.Start(view.OrderID)
	}
	resp.OK(c, view)
}

// POST /orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := oc.Svc.Cancel(uid, uint(id)); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrOrderTerminal):
			resp.Conflict(c, err.Error())
		case errors.Is(err, services.ErrTransitionConflict):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	oc.Tracking.Stop(uint(id))
	resp.OK(c, gin.H{"ok": true})
}
