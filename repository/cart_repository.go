package repository

import (
	"backend/entity"
	"errors"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart, or an empty cart when none exists
// (or the read fails with not-found) so callers always get a usable value.
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	return &c, err
}

// GetOrCreateCart returns the user's cart, creating an unlocked one (no
// restaurant) when none exists. The restaurant lock is only ever taken
// together with a line insert, never on its own.
func (r *CartRepository) GetOrCreateCart(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// UpsertItem merges on (cart, menu): an existing line for the same menu gets
// its quantity bumped, otherwise the row is inserted. The add-time snapshot
// (name/price) of the first add wins.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND menu_id = ?", cartID, row.MenuID).
		First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

// UpdateQty sets the quantity of the line for menuID; qty <= 0 removes it.
func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, menuID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, userID, menuID)
	}
	return tx.Exec(`
		UPDATE cart_items
		   SET qty = ?
		 WHERE menu_id = ?
		   AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)
	`, qty, menuID, userID).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, menuID uint) error {
	if err := tx.
		Where("menu_id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", menuID, userID).
		Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	// release the restaurant lock and any coupon once the cart is empty
	return tx.Exec(`
		UPDATE carts SET restaurant_id = 0, coupon_code = ''
		 WHERE user_id = ?
		   AND NOT EXISTS (SELECT 1 FROM cart_items ci WHERE ci.cart_id = carts.id AND ci.deleted_at IS NULL)
	`, userID).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Cart{}).Where("id = ?", c.ID).
		Updates(map[string]any{"restaurant_id": 0, "coupon_code": ""}).Error
}

func (r *CartRepository) SetCoupon(userID uint, code string) error {
	return r.DB.Model(&entity.Cart{}).Where("user_id = ?", userID).
		Update("coupon_code", code).Error
}
