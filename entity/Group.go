package entity

import (
	"gorm.io/gorm"
)

// Role groups. Seeded once: "Manager" and "Delivery-Crew".
const (
	GroupManager      = "Manager"
	GroupDeliveryCrew = "Delivery-Crew"
)

type Group struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Users []User `gorm:"many2many:user_groups;" json:"-"`
}
