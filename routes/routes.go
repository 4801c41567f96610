package routes

import (
	"github.com/Eduardo-pena2000/parmesana-web-app/configs"
	"github.com/Eduardo-pena2000/parmesana-web-app/controllers"
	"github.com/Eduardo-pena2000/parmesana-web-app/middlewares"
	"github.com/Eduardo-pena2000/parmesana-web-app/repository"
	"github.com/Eduardo-pena2000/parmesana-web-app/services"
	"github.com/Eduardo-pena2000/parmesana-web-app/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"success": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	addrRepo := repository.NewAddressRepository(db)
	resvRepo := repository.NewReservationRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, cfg.JWTRefreshSecret, cfg.JWTRefreshTTL)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, addrRepo, userRepo, services.Pricing{
		TaxRate:             cfg.TaxRate,
		DeliveryFee:         cfg.DeliveryFee,
		FreeDeliveryMinimum: cfg.FreeDeliveryMinimum,
	})
	resvSvc := services.NewReservationService(resvRepo)

	var provider services.PaymentProvider = services.MockProvider{}
	if cfg.StripeSecretKey != "" {
		provider = services.NewStripeProvider(cfg.StripeSecretKey)
	}

	// Order tracking hub
	hub := ws.NewOrderHub(orderRepo)
	orderSvc.Notifier = hub
	go hub.Run()

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuRepo)
	orderCtrl := controllers.NewOrderController(orderSvc)
	addrCtrl := controllers.NewAddressController(addrRepo)
	resvCtrl := controllers.NewReservationController(resvSvc)
	payCtrl := controllers.NewPaymentController(provider, cfg.Currency)

	authRequired := middlewares.AuthMiddleware(cfg.JWTSecret)
	staffOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "admin", "staff")

	api := r.Group("/api")

	// Auth
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/refresh", authCtrl.Refresh)
		a.GET("/me", authRequired, authCtrl.Me)
		a.PATCH("/me", authRequired, authCtrl.UpdateMe)
	}

	// Menu (public reads, admin writes)
	m := api.Group("/menu")
	{
		m.GET("/categories", menuCtrl.Categories)
		m.GET("/categories/:slug", menuCtrl.CategoryBySlug)
		m.GET("/items", menuCtrl.Items)
		m.GET("/items/:id", menuCtrl.Item)
		m.POST("/items", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"), menuCtrl.CreateItem)
		m.PATCH("/items/:id/availability", staffOnly, menuCtrl.UpdateAvailability)
	}

	// Orders
	o := api.Group("/orders", authRequired)
	{
		o.POST("", orderCtrl.Create)
		o.GET("", orderCtrl.List)
		o.GET("/stats", orderCtrl.Stats)
		o.GET("/number/:orderNumber", orderCtrl.DetailByNumber)
		o.GET("/:id", orderCtrl.Detail)
		o.PUT("/:id/cancel", orderCtrl.Cancel)
		o.PUT("/:id/rate", orderCtrl.Rate)
		o.PUT("/:id/status", staffOnly, orderCtrl.UpdateStatus)
	}

	// Addresses
	ad := api.Group("/addresses", authRequired)
	{
		ad.GET("", addrCtrl.List)
		ad.POST("", addrCtrl.Create)
		ad.PATCH("/:id", addrCtrl.Update)
		ad.DELETE("/:id", addrCtrl.Delete)
	}

	// Reservations
	re := api.Group("/reservations", authRequired)
	{
		re.POST("", resvCtrl.Create)
		re.GET("/my-reservations", resvCtrl.ListMine)
		re.PUT("/:id/cancel", resvCtrl.Cancel)
	}

	// Payments
	api.POST("/payments/create-payment-intent", authRequired, payCtrl.CreatePaymentIntent)

	// Live order tracking
	r.GET("/ws/orders/:id", authRequired, hub.Handler)
}
