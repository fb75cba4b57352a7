package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type AddressRepository struct{ DB *gorm.DB }

func NewAddressRepository(db *gorm.DB) *AddressRepository { return &AddressRepository{DB: db} }

func (r *AddressRepository) ListForUser(userID uint) ([]entity.Address, error) {
	var out []entity.Address
	err := r.DB.Where("user_id = ?", userID).Order("is_default DESC, id").Find(&out).Error
	return out, err
}

func (r *AddressRepository) GetForUser(userID, addressID uint) (*entity.Address, error) {
	var a entity.Address
	if err := r.DB.Where("id = ? AND user_id = ?", addressID, userID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts the address; when flagged default it clears the previous
// default in the same transaction so at most one remains.
func (r *AddressRepository) Create(a *entity.Address) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if a.IsDefault {
			if err := tx.Model(&entity.Address{}).
				Where("user_id = ?", a.UserID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(a).Error
	})
}

func (r *AddressRepository) Update(userID, addressID uint, updates map[string]any) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if v, ok := updates["is_default"]; ok && v == true {
			if err := tx.Model(&entity.Address{}).
				Where("user_id = ?", userID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		res := tx.Model(&entity.Address{}).
			Where("id = ? AND user_id = ?", addressID, userID).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *AddressRepository) Delete(userID, addressID uint) error {
	res := r.DB.Where("id = ? AND user_id = ?", addressID, userID).Delete(&entity.Address{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
