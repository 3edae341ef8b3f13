package services

import (
	"testing"

	"littlelemon/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddCreatesLine(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	u := makeUser(t, db, "alice@example.com", false)
	m := makeMenuItem(t, db, "Greek Salad", 700)

	line, err := svc.Add(u.ID, m.ID, 2)
	require.NoError(t, err)

	assert.Equal(t, u.ID, line.UserID)
	assert.Equal(t, m.ID, line.MenuItemID)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, int64(700), line.UnitPrice)
	assert.Equal(t, int64(1400), line.Price)
}

func TestCartAddMergesRepeatAdds(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	u := makeUser(t, db, "alice@example.com", false)
	m := makeMenuItem(t, db, "Greek Salad", 700)

	_, err := svc.Add(u.ID, m.ID, 2)
	require.NoError(t, err)
	line, err := svc.Add(u.ID, m.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, 5, line.Quantity)
	assert.Equal(t, int64(5*700), line.Price)

	var count int64
	require.NoError(t, db.Model(&entity.CartItem{}).
		Where("user_id = ? AND menu_item_id = ?", u.ID, m.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count, "repeat adds must never create a second line")
}

func TestCartAddResnapshotsUnitPrice(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	u := makeUser(t, db, "alice@example.com", false)
	m := makeMenuItem(t, db, "Greek Salad", 700)

	_, err := svc.Add(u.ID, m.ID, 1)
	require.NoError(t, err)

	require.NoError(t, db.Model(&entity.MenuItem{}).
		Where("id = ?", m.ID).Update("price", 900).Error)

	line, err := svc.Add(u.ID, m.ID, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, int64(900), line.UnitPrice)
	assert.Equal(t, int64(1800), line.Price)
}

func TestCartAddUnknownMenuItem(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	u := makeUser(t, db, "alice@example.com", false)

	_, err := svc.Add(u.ID, 9999, 1)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestCartAddQuantityDefaultsToOne(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	u := makeUser(t, db, "alice@example.com", false)
	m := makeMenuItem(t, db, "Espresso", 300)

	line, err := svc.Add(u.ID, m.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)

	_, err = svc.Add(u.ID, m.ID, -2)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestCartListSubtotal(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	u := makeUser(t, db, "alice@example.com", false)
	a := makeMenuItem(t, db, "Lemon Tart", 550)
	b := makeMenuItem(t, db, "Espresso", 300)

	_, err := svc.Add(u.ID, a.ID, 2)
	require.NoError(t, err)
	_, err = svc.Add(u.ID, b.ID, 1)
	require.NoError(t, err)

	lines, subtotal, err := svc.List(u.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
	assert.Equal(t, int64(2*550+300), subtotal)
}

func TestCartClearIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	u := makeUser(t, db, "alice@example.com", false)
	m := makeMenuItem(t, db, "Espresso", 300)

	// Clearing an empty cart is a no-op.
	require.NoError(t, svc.Clear(u.ID))

	_, err := svc.Add(u.ID, m.ID, 1)
	require.NoError(t, err)
	require.NoError(t, svc.Clear(u.ID))
	require.NoError(t, svc.Clear(u.ID))

	lines, subtotal, err := svc.List(u.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Zero(t, subtotal)
}

func TestCartClearLeavesOtherUsersAlone(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	alice := makeUser(t, db, "alice@example.com", false)
	bob := makeUser(t, db, "bob@example.com", false)
	m := makeMenuItem(t, db, "Espresso", 300)

	_, err := svc.Add(alice.ID, m.ID, 1)
	require.NoError(t, err)
	_, err = svc.Add(bob.ID, m.ID, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(alice.ID))

	lines, _, err := svc.List(bob.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}
