package repository

import (
	"backend/entity"
	"strings"

	"gorm.io/gorm"
)

type CouponRepository struct{ DB *gorm.DB }

func NewCouponRepository(db *gorm.DB) *CouponRepository { return &CouponRepository{DB: db} }

// GetByCode looks up a coupon case-insensitively on the trimmed code.
func (r *CouponRepository) GetByCode(code string) (*entity.Coupon, error) {
	code = strings.TrimSpace(code)
	var c entity.Coupon
	if err := r.DB.Where("UPPER(code) = UPPER(?)", code).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CouponRepository) List() ([]entity.Coupon, error) {
	var out []entity.Coupon
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}
