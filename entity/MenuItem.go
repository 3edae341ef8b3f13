package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Title string `gorm:"not null" json:"title"`

	// Minor currency units. Cart and order lines snapshot this at add time,
	// so later price edits never rewrite history.
	Price    int64 `gorm:"not null" json:"price"`
	Featured bool  `gorm:"not null;default:false" json:"featured"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"category"`
}
