package controllers

import (
	"errors"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddressController struct{ Repo *repository.AddressRepository }

func NewAddressController(r *repository.AddressRepository) *AddressController {
	return &AddressController{Repo: r}
}

type addressReq struct {
	Label     string `json:"label" binding:"required"`
	Address   string `json:"address" binding:"required"`
	Landmark  string `json:"landmark"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	Pincode   string `json:"pincode" binding:"required,len=6,numeric"`
	IsDefault bool   `json:"isDefault"`
}

// GET /addresses
func (h *AddressController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	items, err := h.Repo.ListForUser(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /addresses
func (h *AddressController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req addressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	a := entity.Address{
		UserID: uid, Label: req.Label, Address: req.Address, Landmark: req.Landmark,
		City: req.City, State: req.State, Pincode: req.Pincode, IsDefault: req.IsDefault,
	}
	if err := h.Repo.Create(&a); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, a)
}

// PATCH /addresses/:id
func (h *AddressController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req map[string]any
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	// whitelist updatable columns
	updates := map[string]any{}
	for _, k := range []string{"label", "address", "landmark", "city", "state", "pincode"} {
		if v, ok := req[k]; ok {
			updates[k] = v
		}
	}
	if v, ok := req["isDefault"]; ok {
		updates["is_default"] = v
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := h.Repo.Update(uid, uint(id), updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "address not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /addresses/:id
func (h *AddressController) Delete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := h.Repo.Delete(uid, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "address not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
