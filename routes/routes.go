package routes

import (
	"littlelemon/configs"
	"littlelemon/controllers"
	"littlelemon/middlewares"
	"littlelemon/repository"
	"littlelemon/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo, groupRepo)
	groupSvc := services.NewGroupService(groupRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	groupCtrl := controllers.NewGroupController(groupSvc)

	authed := middlewares.AuthMiddleware(userRepo, cfg.JWTSecret)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", authed, authCtrl.Me)

	// Menu browsing (authenticated, read-only)
	m := r.Group("/", authed)
	{
		m.GET("/categories", menuCtrl.Categories)
		m.GET("/menu-items", menuCtrl.List)
		m.GET("/menu-items/:id", menuCtrl.Detail)
	}

	// Cart
	cart := r.Group("/cart", authed)
	{
		cart.POST("/menu-items", cartCtrl.Add)
		cart.GET("/menu-items", cartCtrl.List)
		cart.DELETE("/menu-items", cartCtrl.Clear)
	}

	// Orders
	o := r.Group("/orders", authed)
	{
		o.POST("", orderCtrl.Create)
		o.GET("", orderCtrl.List)
		o.GET("/:id", orderCtrl.Detail)
		o.PUT("/:id", orderCtrl.Update)
		o.PATCH("/:id", orderCtrl.Update)
		o.DELETE("/:id", orderCtrl.Delete)
	}

	// Group membership (role checks in the service)
	g := r.Group("/groups", authed)
	{
		g.GET("/manager/users", groupCtrl.ManagerMembers)
		g.POST("/manager/users", groupCtrl.ManagerAdd)
		g.DELETE("/manager/users/:userId", groupCtrl.ManagerRemove)

		g.GET("/delivery-crew/users", groupCtrl.CrewMembers)
		g.POST("/delivery-crew/users", groupCtrl.CrewAdd)
		g.DELETE("/delivery-crew/users/:userId", groupCtrl.CrewRemove)
	}
}
