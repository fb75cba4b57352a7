package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Deps struct {
	DB       *gorm.DB
	Cfg      *configs.Config
	Hub      *ws.EventHub
	Tracking *services.TrackingService

	Auth     *services.AuthService
	Cart     *services.CartService
	Pricing  *services.PricingService
	Checkout *services.CheckoutService
	Orders   *services.OrderService

	Addresses *repository.AddressRepository
}

func RegisterRoutes(r *gin.Engine, d *Deps) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	authCtrl := controllers.NewAuthController(d.Auth)
	cartCtrl := controllers.NewCartController(d.Cart, d.Pricing)
	couponCtrl := controllers.NewCouponController(d.Pricing)
	addrCtrl := controllers.NewAddressController(d.Addresses)
	checkoutCtrl := controllers.NewCheckoutController(d.Checkout)
	orderCtrl := controllers.NewOrderController(d.Orders, d.Tracking)
	restCtrl := controllers.NewRestaurantController(d.DB)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(d.Cfg.JWTSecret), authCtrl.Me)

	// Catalog (public)
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id/menu", restCtrl.Menu)
	r.GET("/coupons", couponCtrl.List)

	// Everything below is per-user
	u := r.Group("/", middlewares.AuthMiddleware(d.Cfg.JWTSecret))
	{
		u.GET("/cart", cartCtrl.Get)
		u.GET("/cart/conflict", cartCtrl.Conflict)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items/qty", cartCtrl.UpdateQty)
		u.DELETE("/cart/items", cartCtrl.RemoveItem)
		u.DELETE("/cart", cartCtrl.Clear)
		u.POST("/cart/coupon", cartCtrl.ApplyCoupon)
		u.DELETE("/cart/coupon", cartCtrl.RemoveCoupon)
		u.GET("/cart/breakdown", cartCtrl.Breakdown)

		u.GET("/addresses", addrCtrl.List)
		u.POST("/addresses", addrCtrl.Create)
		u.PATCH("/addresses/:id", addrCtrl.Update)
		u.DELETE("/addresses/:id", addrCtrl.Delete)

		u.POST("/checkout", checkoutCtrl.Checkout)

		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.GET("/orders/:id/track", orderCtrl.Track)
		u.POST("/orders/:id/cancel", orderCtrl.Cancel)

		u.GET("/ws", d.Hub.Serve)
	}
}
