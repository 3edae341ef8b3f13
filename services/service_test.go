package services

import (
	"fmt"
	"strings"
	"testing"

	"littlelemon/auth"
	"littlelemon/entity"
	"littlelemon/repository"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB gives every test its own named shared-cache in-memory database,
// so the connection pool always lands on the same store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Group{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	for _, n := range []string{entity.GroupManager, entity.GroupDeliveryCrew} {
		require.NoError(t, db.FirstOrCreate(&entity.Group{}, entity.Group{Name: n}).Error)
	}
	return db
}

func makeUser(t *testing.T, db *gorm.DB, email string, staff bool, groups ...string) *entity.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{Email: email, Password: string(hash), FirstName: "Test", LastName: "User", IsStaff: staff}
	require.NoError(t, db.Create(u).Error)

	for _, name := range groups {
		var g entity.Group
		require.NoError(t, db.Where("name = ?", name).First(&g).Error)
		require.NoError(t, db.Model(&g).Association("Users").Append(u))
	}
	return u
}

// actorFor reloads group membership the way the auth middleware does.
func actorFor(t *testing.T, db *gorm.DB, u *entity.User) auth.Actor {
	t.Helper()

	loaded, err := repository.NewUserRepository(db).FindWithGroups(u.ID)
	require.NoError(t, err)
	return auth.NewActor(loaded)
}

func makeMenuItem(t *testing.T, db *gorm.DB, title string, price int64) *entity.MenuItem {
	t.Helper()

	cat := entity.Category{Slug: "mains", Title: "Mains"}
	require.NoError(t, db.Where(entity.Category{Slug: cat.Slug}).FirstOrCreate(&cat).Error)
	m := &entity.MenuItem{Title: title, Price: price, CategoryID: cat.ID}
	require.NoError(t, db.Create(m).Error)
	return m
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewUserRepository(db),
		repository.NewGroupRepository(db),
	)
}

func newGroupService(db *gorm.DB) *GroupService {
	return NewGroupService(repository.NewGroupRepository(db), repository.NewUserRepository(db))
}
