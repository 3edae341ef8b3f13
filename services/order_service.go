package services

import (
	"errors"

	"littlelemon/auth"
	"littlelemon/entity"
	"littlelemon/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	CartRepo  *repository.CartRepository
	UserRepo  *repository.UserRepository
	GroupRepo *repository.GroupRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
	groupRepo *repository.GroupRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo, GroupRepo: groupRepo}
}

// ----- Checkout -----

// Checkout drains the user's cart into a new order. The read, the order
// and item writes, the total, and the cart clear all commit together or
// not at all.
func (s *OrderService) Checkout(userID uint) (*entity.Order, error) {
	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		id, err := s.checkout(tx, userID)
		orderID = id
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOrderWithItems(orderID)
}

func (s *OrderService) checkout(tx *gorm.DB, userID uint) (uint, error) {
	lines, err := s.CartRepo.ListForUser(tx, userID)
	if err != nil {
		return 0, err
	}
	if len(lines) == 0 {
		return 0, ErrCartEmpty
	}

	order := entity.Order{
		UserID: userID,
		Status: entity.StatusUnprocessed,
		Total:  0, // placeholder until the lines are summed
	}
	if err := s.Repo.CreateOrder(tx, &order); err != nil {
		return 0, err
	}

	var total int64
	for _, line := range lines {
		oi := entity.OrderItem{
			OrderID:    order.ID,
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			Price:      line.Price,
		}
		if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
			return 0, err
		}
		total += line.Price
	}

	if err := s.Repo.SetTotal(tx, order.ID, total); err != nil {
		return 0, err
	}
	if err := s.CartRepo.ClearForUser(tx, userID); err != nil {
		return 0, err
	}
	return order.ID, nil
}

// ----- Reads -----

// List applies the caller's visibility: staff/manager see every order,
// delivery crew the orders assigned to them, customers their own.
func (s *OrderService) List(actor auth.Actor, status *entity.OrderStatus) ([]entity.Order, error) {
	f := repository.OrderFilter{Status: status}
	switch actor.Role() {
	case auth.RoleManager:
		// no narrowing
	case auth.RoleDeliveryCrew:
		f.DeliveryCrewID = actor.UserID
	default:
		f.UserID = actor.UserID
	}
	return s.Repo.ListOrders(f)
}

// Detail re-checks ownership even though list filtering already hides
// foreign orders: direct ids must not leak them.
func (s *OrderService) Detail(actor auth.Actor, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderWithItems(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	switch actor.Role() {
	case auth.RoleManager:
	case auth.RoleDeliveryCrew:
		if o.DeliveryCrewID == nil || *o.DeliveryCrewID != actor.UserID {
			return nil, ErrForbidden
		}
	default:
		if o.UserID != actor.UserID {
			return nil, ErrForbidden
		}
	}
	return o, nil
}

// ----- Mutation -----

type UpdateOrderReq struct {
	Status         *int  `json:"status"`
	DeliveryCrewID *uint `json:"deliveryCrewId"`
}

// Update applies a role-scoped partial update. Delivery crew may flip the
// status of their own assignments only; managers may set status and/or
// reassign the crew; customers get nothing.
func (s *OrderService) Update(actor auth.Actor, orderID uint, req *UpdateOrderReq) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	fields := map[string]any{}
	switch actor.Role() {
	case auth.RoleDeliveryCrew:
		if o.DeliveryCrewID == nil || *o.DeliveryCrewID != actor.UserID {
			return nil, ErrForbidden
		}
		if req.Status == nil {
			return nil, ErrStatusRequired
		}
		status := entity.OrderStatus(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		fields["status"] = status

	case auth.RoleManager:
		if req.Status != nil {
			status := entity.OrderStatus(*req.Status)
			if !status.Valid() {
				return nil, ErrInvalidStatus
			}
			fields["status"] = status
		}
		if req.DeliveryCrewID != nil {
			if err := s.checkCrewAssignee(*req.DeliveryCrewID); err != nil {
				return nil, err
			}
			fields["delivery_crew_id"] = *req.DeliveryCrewID
		}

	default:
		return nil, ErrForbidden
	}

	if len(fields) > 0 {
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			return s.Repo.UpdateOrderFields(tx, o.ID, fields)
		})
		if err != nil {
			return nil, err
		}
	}
	return s.Repo.GetOrder(o.ID)
}

// checkCrewAssignee verifies the assignment target exists and actually
// belongs to the Delivery-Crew group, otherwise crew-scoped visibility
// would never match the assignment.
func (s *OrderService) checkCrewAssignee(userID uint) error {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	group, err := s.GroupRepo.GetByName(entity.GroupDeliveryCrew)
	if err != nil {
		return ErrGroupNotFound
	}
	ok, err := s.GroupRepo.IsMember(group.ID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotDeliveryCrew
	}
	return nil
}

// Delete is manager-only and removes the order items first, then the
// order, in one transaction.
func (s *OrderService) Delete(actor auth.Actor, orderID uint) error {
	if !actor.IsManager() {
		return ErrForbidden
	}
	if _, err := s.Repo.GetOrder(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteOrderCascade(tx, orderID)
	})
}
