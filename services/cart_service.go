package services

import (
	"errors"

	"littlelemon/entity"
	"littlelemon/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

// Add puts quantity of a menu item into the user's cart. A repeat add for
// the same item merges into the existing line instead of creating a second
// one; the upsert does the increment in SQL, so concurrent adds are safe.
// Returns the resulting line.
func (s *CartService) Add(userID, menuItemID uint, quantity int) (*entity.CartItem, error) {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	m, err := s.MenuRepo.GetMenuBasics(menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	line := &entity.CartItem{
		UserID:     userID,
		MenuItemID: m.ID,
		Quantity:   quantity,
		UnitPrice:  m.Price,
		Price:      m.Price * int64(quantity),
	}
	if err := s.CartRepo.UpsertLine(s.DB, line); err != nil {
		return nil, err
	}

	// Re-read: after a merge the struct above holds pre-merge numbers.
	return s.CartRepo.GetLine(userID, menuItemID)
}

func (s *CartService) List(userID uint) ([]entity.CartItem, int64, error) {
	lines, err := s.CartRepo.ListForUser(s.DB, userID)
	if err != nil {
		return nil, 0, err
	}
	var subtotal int64
	for _, l := range lines {
		subtotal += l.Price
	}
	return lines, subtotal, nil
}

// Clear empties the cart. Idempotent.
func (s *CartService) Clear(userID uint) error {
	return s.CartRepo.ClearForUser(s.DB, userID)
}
