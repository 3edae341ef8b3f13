package entity

import (
	"time"
)

// Order is created only by checkout, never posted directly. Total is the
// sum of its item prices, computed once at checkout. Hard-deleted together
// with its items, hence no soft-delete column.
type Order struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"date"`
	UpdatedAt time.Time `json:"-"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`

	DeliveryCrewID *uint `gorm:"index" json:"deliveryCrewId"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	Status OrderStatus `gorm:"not null;default:0" json:"status"`
	Total  int64       `gorm:"not null" json:"total"`

	Items []OrderItem `json:"items,omitempty"`
}
