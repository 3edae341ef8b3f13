package services

import (
	"errors"

	"littlelemon/auth"
	"littlelemon/entity"
	"littlelemon/repository"

	"gorm.io/gorm"
)

// GroupService manages the Manager and Delivery-Crew member lists.
// The Manager list is staff-only; the Delivery-Crew list is open to
// managers (which includes staff).
type GroupService struct {
	GroupRepo *repository.GroupRepository
	UserRepo  *repository.UserRepository
}

func NewGroupService(gr *repository.GroupRepository, ur *repository.UserRepository) *GroupService {
	return &GroupService{GroupRepo: gr, UserRepo: ur}
}

func (s *GroupService) authorize(actor auth.Actor, groupName string) error {
	switch groupName {
	case entity.GroupManager:
		if !actor.IsStaff {
			return ErrForbidden
		}
	case entity.GroupDeliveryCrew:
		if !actor.IsManager() {
			return ErrForbidden
		}
	default:
		return ErrGroupNotFound
	}
	return nil
}

func (s *GroupService) group(name string) (*entity.Group, error) {
	g, err := s.GroupRepo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *GroupService) Members(actor auth.Actor, groupName string) ([]entity.User, error) {
	if err := s.authorize(actor, groupName); err != nil {
		return nil, err
	}
	g, err := s.group(groupName)
	if err != nil {
		return nil, err
	}
	return s.GroupRepo.ListMembers(g)
}

// AddMember puts the user identified by email into the group.
func (s *GroupService) AddMember(actor auth.Actor, groupName, email string) (*entity.User, error) {
	if err := s.authorize(actor, groupName); err != nil {
		return nil, err
	}
	g, err := s.group(groupName)
	if err != nil {
		return nil, err
	}
	u, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if err := s.GroupRepo.AddMember(g, u); err != nil {
		return nil, err
	}
	return u, nil
}

// RemoveMember takes the user out of the group. Removing a non-member is
// a no-op, like the group list it mirrors.
func (s *GroupService) RemoveMember(actor auth.Actor, groupName string, userID uint) (*entity.User, error) {
	if err := s.authorize(actor, groupName); err != nil {
		return nil, err
	}
	g, err := s.group(groupName)
	if err != nil {
		return nil, err
	}
	u, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if err := s.GroupRepo.RemoveMember(g, u); err != nil {
		return nil, err
	}
	return u, nil
}
