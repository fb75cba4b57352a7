package main

import (
	"log"

	"backend/configs"
	"backend/repository"
	"backend/routes"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	db, err := configs.Connect(cfg.DBSource)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := configs.SeedCoupons(db); err != nil {
		log.Fatalf("seed coupons: %v", err)
	}
	if err := configs.SeedCatalog(db); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	// event hub feeds cart badge + order status pushes
	hub := ws.NewEventHub()
	go hub.Run()

	// repositories
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	addrRepo := repository.NewAddressRepository(db)

	// services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo, orderRepo, hub)
	pricingSvc := services.NewPricingService(db, couponRepo, cartRepo)
	orderSvc := services.NewOrderService(db, orderRepo)
	trackingSvc := services.NewTrackingService(orderSvc, hub, cfg.TrackingInterval)
	checkoutSvc := services.NewCheckoutService(
		db, cartRepo, orderRepo, addrRepo, pricingSvc,
		services.NewSimulatedAuthorizer(), trackingSvc,
	)

	// re-arm tracking for orders that were mid-delivery at shutdown
	if err := trackingSvc.Resume(); err != nil {
		log.Printf("resume tracking: %v", err)
	}

	r := gin.Default()
	routes.RegisterRoutes(r, &routes.Deps{
		DB: db, Cfg: cfg, Hub: hub, Tracking: trackingSvc,
		Auth: authSvc, Cart: cartSvc, Pricing: pricingSvc,
		Checkout: checkoutSvc, Orders: orderSvc,
		Addresses: addrRepo,
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
