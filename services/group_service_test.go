package services

import (
	"testing"

	"littlelemon/auth"
	"littlelemon/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerGroupIsStaffOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newGroupService(db)
	staff := makeUser(t, db, "staff@example.com", true)
	manager := makeUser(t, db, "manager@example.com", false, entity.GroupManager)
	customer := makeUser(t, db, "alice@example.com", false)

	_, err := svc.Members(actorFor(t, db, staff), entity.GroupManager)
	assert.NoError(t, err)

	// Even a manager may not edit the manager list.
	_, err = svc.Members(actorFor(t, db, manager), entity.GroupManager)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.AddMember(actorFor(t, db, manager), entity.GroupManager, customer.Email)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Members(actorFor(t, db, customer), entity.GroupManager)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCrewGroupNeedsManager(t *testing.T) {
	db := newTestDB(t)
	svc := newGroupService(db)
	manager := makeUser(t, db, "manager@example.com", false, entity.GroupManager)
	staff := makeUser(t, db, "staff@example.com", true)
	customer := makeUser(t, db, "alice@example.com", false)

	_, err := svc.Members(actorFor(t, db, manager), entity.GroupDeliveryCrew)
	assert.NoError(t, err)
	_, err = svc.Members(actorFor(t, db, staff), entity.GroupDeliveryCrew)
	assert.NoError(t, err)
	_, err = svc.Members(actorFor(t, db, customer), entity.GroupDeliveryCrew)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAddRemoveMemberChangesResolvedRole(t *testing.T) {
	db := newTestDB(t)
	svc := newGroupService(db)
	manager := makeUser(t, db, "manager@example.com", false, entity.GroupManager)
	u := makeUser(t, db, "rider@example.com", false)

	assert.Equal(t, auth.RoleCustomer, actorFor(t, db, u).Role())

	_, err := svc.AddMember(actorFor(t, db, manager), entity.GroupDeliveryCrew, u.Email)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleDeliveryCrew, actorFor(t, db, u).Role())

	members, err := svc.Members(actorFor(t, db, manager), entity.GroupDeliveryCrew)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, u.ID, members[0].ID)

	_, err = svc.RemoveMember(actorFor(t, db, manager), entity.GroupDeliveryCrew, u.ID)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleCustomer, actorFor(t, db, u).Role())
}

func TestAddMemberUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := newGroupService(db)
	staff := makeUser(t, db, "staff@example.com", true)

	_, err := svc.AddMember(actorFor(t, db, staff), entity.GroupManager, "ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.RemoveMember(actorFor(t, db, staff), entity.GroupManager, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRemoveNonMemberIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := newGroupService(db)
	staff := makeUser(t, db, "staff@example.com", true)
	u := makeUser(t, db, "alice@example.com", false)

	_, err := svc.RemoveMember(actorFor(t, db, staff), entity.GroupManager, u.ID)
	assert.NoError(t, err)
}

func TestRolePrecedence(t *testing.T) {
	db := newTestDB(t)

	// A user in both groups resolves as manager for order access.
	both := makeUser(t, db, "both@example.com", false, entity.GroupManager, entity.GroupDeliveryCrew)
	assert.Equal(t, auth.RoleManager, actorFor(t, db, both).Role())

	// Staff outranks crew membership too.
	staffCrew := makeUser(t, db, "staffcrew@example.com", true, entity.GroupDeliveryCrew)
	assert.Equal(t, auth.RoleManager, actorFor(t, db, staffCrew).Role())
}
