package entity

import (
	"gorm.io/gorm"
)

type Address struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"index"`
	User   User `json:"-"`

	Label    string `json:"label"` // Home, Work, ...
	Address  string `json:"address"`
	Landmark string `json:"landmark,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`

	// at most one default per user, enforced in the repository
	IsDefault bool `json:"isDefault"`
}

// Oneline renders the snapshot string stored on orders.
func (a *Address) Oneline() string {
	s := a.Address
	if a.Landmark != "" {
		s += ", " + a.Landmark
	}
	s += ", " + a.City + ", " + a.State + " " + a.Pincode
	return s
}
