package auth

import (
	"littlelemon/entity"
)

// Role is the caller's effective role for order access, resolved once per
// request. Precedence when a user holds several groups:
// staff/Manager > Delivery-Crew > customer.
type Role int

const (
	RoleCustomer Role = iota
	RoleDeliveryCrew
	RoleManager
)

func (r Role) String() string {
	switch r {
	case RoleManager:
		return "manager"
	case RoleDeliveryCrew:
		return "delivery-crew"
	default:
		return "customer"
	}
}

// Actor carries the authenticated caller's identity and resolved role
// through the request. Services branch on it instead of re-querying group
// membership.
type Actor struct {
	UserID  uint
	IsStaff bool
	groups  map[string]bool
}

func NewActor(u *entity.User) Actor {
	groups := make(map[string]bool, len(u.Groups))
	for _, g := range u.Groups {
		groups[g.Name] = true
	}
	return Actor{UserID: u.ID, IsStaff: u.IsStaff, groups: groups}
}

func (a Actor) InGroup(name string) bool {
	return a.groups[name]
}

func (a Actor) IsManager() bool {
	return a.IsStaff || a.groups[entity.GroupManager]
}

func (a Actor) IsDeliveryCrew() bool {
	return a.groups[entity.GroupDeliveryCrew]
}

func (a Actor) Role() Role {
	switch {
	case a.IsManager():
		return RoleManager
	case a.IsDeliveryCrew():
		return RoleDeliveryCrew
	default:
		return RoleCustomer
	}
}
