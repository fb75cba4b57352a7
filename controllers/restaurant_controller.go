package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Read-only catalog endpoints; the catalog itself is seeded data.
type RestaurantController struct{ DB *gorm.DB }

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{DB: db}
}

// GET /restaurants
func (h *RestaurantController) List(c *gin.Context) {
	var items []entity.Restaurant
	if err := h.DB.Where("is_open = ?", true).Order("rating DESC").Find(&items).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /restaurants/:id/menu
func (h *RestaurantController) Menu(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var rest entity.Restaurant
	if err := h.DB.First(&rest, id).Error; err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	var menus []entity.Menu
	if err := h.DB.Where("restaurant_id = ?", rest.ID).Order("category, id").Find(&menus).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurant": rest, "items": menus})
}
