package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Staff accounts may browse every order and manage the Manager group.
	IsStaff bool `gorm:"not null;default:false" json:"isStaff"`

	Groups []Group `gorm:"many2many:user_groups;" json:"-"`

	Orders    []Order    `json:"-"`
	CartItems []CartItem `json:"-"`
}
