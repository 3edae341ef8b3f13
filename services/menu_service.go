package services

import (
	"errors"

	"littlelemon/entity"
	"littlelemon/repository"

	"gorm.io/gorm"
)

// MenuService is read-only: the catalogue is seeded, not managed over HTTP.
type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) Categories() ([]entity.Category, error) {
	return s.Repo.ListCategories()
}

type MenuPage struct {
	Items []entity.MenuItem `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

func (s *MenuService) List(f repository.MenuFilter) (*MenuPage, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	items, total, err := s.Repo.ListMenuItems(f)
	if err != nil {
		return nil, err
	}
	return &MenuPage{Items: items, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

func (s *MenuService) Detail(id uint) (*entity.MenuItem, error) {
	m, err := s.Repo.GetMenuItem(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return m, nil
}
