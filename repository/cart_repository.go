package repository

import (
	"time"

	"littlelemon/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// UpsertLine inserts the line or, when one already exists for
// (user, menu item), folds the quantity into it in a single statement.
// The arithmetic runs in SQL against the stored row, so concurrent adds
// for the same pair cannot lose an increment. The unit price is
// re-snapshotted from the incoming line on every add.
func (r *CartRepository) UpsertLine(tx *gorm.DB, line *entity.CartItem) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "menu_item_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity":   gorm.Expr("quantity + excluded.quantity"),
			"unit_price": gorm.Expr("excluded.unit_price"),
			"price":      gorm.Expr("(quantity + excluded.quantity) * excluded.unit_price"),
			"updated_at": time.Now(),
		}),
	}).Create(line).Error
}

func (r *CartRepository) GetLine(userID, menuItemID uint) (*entity.CartItem, error) {
	var line entity.CartItem
	err := r.DB.Preload("MenuItem").
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) ListForUser(tx *gorm.DB, userID uint) ([]entity.CartItem, error) {
	var lines []entity.CartItem
	err := tx.Preload("MenuItem").
		Where("user_id = ?", userID).
		Find(&lines).Error
	return lines, err
}

// ClearForUser drops every line for the user. No-op when the cart is
// already empty.
func (r *CartRepository) ClearForUser(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
