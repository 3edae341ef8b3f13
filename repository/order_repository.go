package repository

import (
	"littlelemon/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderWithItems(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").Preload("Items.MenuItem").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderFilter narrows the list per the caller's visibility. Exactly one of
// the id fields is set for crew/customer views; manager sees everything.
type OrderFilter struct {
	UserID         uint
	DeliveryCrewID uint
	Status         *entity.OrderStatus
}

func (r *OrderRepository) ListOrders(f OrderFilter) ([]entity.Order, error) {
	q := r.DB.Model(&entity.Order{})
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.DeliveryCrewID != 0 {
		q = q.Where("delivery_crew_id = ?", f.DeliveryCrewID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}

	var out []entity.Order
	err := q.Order("id DESC").Find(&out).Error
	return out, err
}

// UpdateOrderFields applies a partial update. Callers pass only the
// role-permitted columns.
func (r *OrderRepository) UpdateOrderFields(tx *gorm.DB, orderID uint, fields map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(fields).Error
}

func (r *OrderRepository) SetTotal(tx *gorm.DB, orderID uint, total int64) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Update("total", total).Error
}

// DeleteOrderCascade removes the items first, then the order itself.
// Runs inside the caller's transaction.
func (r *OrderRepository) DeleteOrderCascade(tx *gorm.DB, orderID uint) error {
	if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Order{}, orderID).Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}
