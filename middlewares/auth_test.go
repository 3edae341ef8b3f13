package middlewares

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"littlelemon/entity"
	"littlelemon/repository"
	"littlelemon/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Group{}))

	r := gin.New()
	r.GET("/whoami", AuthMiddleware(repository.NewUserRepository(db), testSecret), func(c *gin.Context) {
		actor := utils.CurrentActor(c)
		c.JSON(http.StatusOK, gin.H{"userId": actor.UserID, "role": actor.Role().String()})
	})
	return r, db
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareResolvesActor(t *testing.T) {
	r, db := setupRouter(t)

	crewGroup := entity.Group{Name: entity.GroupDeliveryCrew}
	require.NoError(t, db.Create(&crewGroup).Error)
	u := entity.User{Email: "crew@example.com", Password: "x"}
	require.NoError(t, db.Create(&u).Error)
	require.NoError(t, db.Model(&crewGroup).Association("Users").Append(&u))

	token, err := utils.GenerateToken(u.ID, testSecret, time.Hour)
	require.NoError(t, err)

	w := get(r, "/whoami", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"delivery-crew"`)
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r, _ := setupRouter(t)
	w := get(r, "/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	r, _ := setupRouter(t)
	w := get(r, "/whoami", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsUnknownUser(t *testing.T) {
	r, _ := setupRouter(t)
	token, err := utils.GenerateToken(42, testSecret, time.Hour)
	require.NoError(t, err)
	w := get(r, "/whoami", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	r, db := setupRouter(t)
	u := entity.User{Email: "late@example.com", Password: "x"}
	require.NoError(t, db.Create(&u).Error)

	token, err := utils.GenerateToken(u.ID, testSecret, -time.Minute)
	require.NoError(t, err)
	w := get(r, "/whoami", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
