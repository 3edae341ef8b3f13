package entity

import (
	"time"
)

// OrderItem is a point-in-time snapshot of one cart line at checkout.
// Never edited afterwards, only deleted en masse with its order.
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`

	OrderID uint  `gorm:"not null;uniqueIndex:idx_order_item" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"not null;uniqueIndex:idx_order_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity  int   `gorm:"not null" json:"quantity"`
	UnitPrice int64 `gorm:"not null" json:"unitPrice"`
	Price     int64 `gorm:"not null" json:"price"`
}
