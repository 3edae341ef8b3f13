package entity

import (
	"time"
)

// CartItem is one pending line of a user's cart. No gorm.Model here: lines
// are hard-deleted (clear / checkout), and a soft-delete column would leave
// dead rows inside the (user_id, menu_item_id) unique index.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID uint `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity  int   `gorm:"not null" json:"quantity"`
	UnitPrice int64 `gorm:"not null" json:"unitPrice"`
	Price     int64 `gorm:"not null" json:"price"` // Quantity * UnitPrice
}
