package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vai-sys/DigitalDinner/configs"
	"github.com/vai-sys/DigitalDinner/controllers"
	"github.com/vai-sys/DigitalDinner/middlewares"
	"github.com/vai-sys/DigitalDinner/repository"
	"github.com/vai-sys/DigitalDinner/services"
)

// RegisterRoutes wires repositories, services and controllers onto the
// engine. The menu store comes in as an interface so the relational and
// document sides stay separate bounded contexts.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, menuStore services.MenuStore, cfg *configs.Config) {
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuStore)
	cartSvc := services.NewCartService(db, cartRepo, menuStore)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo, menuStore)

	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc, cfg.UploadsDir)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	authRequired := middlewares.AuthMiddleware(userRepo, cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(userRepo, cfg.JWTSecret, "admin")

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", authRequired, authCtrl.Me)
	}

	// Menu (reads public, writes authenticated)
	m := r.Group("/menu")
	{
		m.GET("", menuCtrl.List)
		m.GET("/:id", menuCtrl.Get)
		m.GET("/category/:categoryName", menuCtrl.ByCategory)
		m.POST("", authRequired, menuCtrl.Create)
		m.PUT("/:id", authRequired, menuCtrl.Update)
		m.DELETE("/:id", authRequired, menuCtrl.Delete)
	}

	// Cart (owner-scoped)
	cart := r.Group("/cart", authRequired)
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("", cartCtrl.Add)
		cart.DELETE("", cartCtrl.Clear)
		cart.PUT("/:id", cartCtrl.Update)
		cart.DELETE("/:id", cartCtrl.Remove)
	}

	// Orders
	o := r.Group("/orders")
	{
		o.GET("/phone/:phoneNumber", orderCtrl.ByPhone)
		o.POST("", authRequired, orderCtrl.Create)
		o.GET("/:id", authRequired, orderCtrl.Detail)
		o.PUT("/:id", adminOnly, orderCtrl.UpdateStatus)
		o.PUT("/:id/cancel", authRequired, orderCtrl.Cancel)
		o.GET("/user/:userId", authRequired, orderCtrl.ListForMe)
	}
}
