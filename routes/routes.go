package routes

import (
	"plateful/configs"
	"plateful/controllers"
	"plateful/middlewares"
	"plateful/pkg/events"
	"plateful/pkg/rolecache"
	"plateful/repository"
	"plateful/services"
	"plateful/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, cache *rolecache.Cache, pub *events.Publisher, hub *ws.OwnerFeedHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	packRepo := repository.NewFoodPackRepository(db)
	resvRepo := repository.NewReservationRepository(db)
	revRepo := repository.NewReviewRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	sessionSvc := services.NewSessionService(userRepo, restRepo, cache)
	cartSvc := services.NewCartService()
	restSvc := services.NewRestaurantService(db, restRepo, userRepo, packRepo, resvRepo, revRepo)
	packSvc := services.NewFoodPackService(packRepo, restRepo)
	resvSvc := services.NewReservationService(db, resvRepo, packRepo, userRepo, pub, hub)
	revSvc := services.NewReviewService(revRepo, packRepo, resvRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, sessionSvc)
	sessionCtrl := controllers.NewSessionController(sessionSvc)
	cartCtrl := controllers.NewCartController(cartSvc, packSvc, resvSvc)
	restCtrl := controllers.NewRestaurantController(restSvc, sessionSvc)
	packCtrl := controllers.NewFoodPackController(packSvc)
	resvCtrl := controllers.NewReservationController(resvSvc)
	revCtrl := controllers.NewReviewController(revSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	ownerOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "owner")

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", auth)
	{
		aAuth.POST("/logout", authCtrl.Logout)
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
		aAuth.PUT("/me/profile", authCtrl.CompleteProfile)
	}

	// Session routing (ต้องล็อกอิน)
	s := r.Group("/session", auth)
	{
		s.GET("/role", sessionCtrl.Resolve)
		s.GET("/current", sessionCtrl.Current)
	}

	// Public browse
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/reviews", revCtrl.ListForRestaurant)
	r.GET("/packs", packCtrl.Browse)
	r.GET("/packs/:id", packCtrl.Detail)
	r.GET("/packs/:id/reviews", revCtrl.ListForPack)

	// เปิดร้าน (ต้องล็อกอิน ยังเป็น customer อยู่ได้)
	r.POST("/restaurants", auth, restCtrl.Onboard)

	// Cart + reservations (user)
	u := r.Group("/", auth)
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items/qty", cartCtrl.UpdateQty)
		u.DELETE("/cart/items", cartCtrl.Remove)
		u.DELETE("/cart", cartCtrl.Clear)
		u.DELETE("/cart/restaurants/:key", cartCtrl.ClearRestaurant)
		u.POST("/cart/checkout", cartCtrl.Checkout)

		u.POST("/reservations", resvCtrl.Reserve)
		u.GET("/reservations", resvCtrl.ListMine)
		u.GET("/reservations/:id", resvCtrl.Detail)
		u.PATCH("/reservations/:id/cancel", resvCtrl.Cancel)

		u.POST("/packs/:id/reviews", revCtrl.Add)
	}

	// Partner (owner)
	partner := r.Group("/partner", ownerOnly)
	{
		partner.GET("/restaurant/dashboard", restCtrl.Dashboard)
		partner.PATCH("/restaurant", restCtrl.UpdateOwn)

		partner.GET("/packs", packCtrl.ListOwn)
		partner.POST("/packs", packCtrl.Create)
		partner.PATCH("/packs/:id", packCtrl.Update)
		partner.DELETE("/packs/:id", packCtrl.Cancel)

		partner.GET("/reservations", resvCtrl.ListForVendor)
		partner.PATCH("/reservations/:id/ready", resvCtrl.Ready)
		partner.PATCH("/reservations/:id/complete", resvCtrl.Complete)
		partner.PATCH("/reservations/:id/no-show", resvCtrl.NoShow)
	}

	// Live feed ของร้าน (token มาทาง query ได้)
	r.GET("/partner/feed", middlewares.WSAuthMiddleware(cfg.JWTSecret), ws.ServeOwnerFeed(hub, restRepo))
}
