package router

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dragonpearl/reservation-app/config"
	"github.com/dragonpearl/reservation-app/controllers"
	"github.com/dragonpearl/reservation-app/middlewares"
	"github.com/dragonpearl/reservation-app/services"
	"github.com/dragonpearl/reservation-app/utils"
)

// SetupRouter wires middlewares, controllers and routes. The SMS sender and
// payment provider come in as interfaces so tests can substitute them.
func SetupRouter(db *gorm.DB, cfg *config.Config, sms services.SMSSender, payments services.PaymentProvider) *gin.Engine {
	r := gin.Default()

	// Registered before any route so every handler chain includes it
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Static site (landing page, reserve form, menu images)
	if _, err := os.Stat("static"); err == nil {
		r.Static("/static", "static")
	}

	issuer := utils.NewTokenIssuer(cfg.JWTSecret)
	identities := services.NewIdentityRepository(db)
	reservationSvc := services.NewReservationService(db, sms)

	userCtrl := controllers.NewUserController(db, services.BcryptVerifier{}, issuer)
	tableCtrl := controllers.NewTableController(db)
	menuCtrl := controllers.NewMenuController(db)
	reservationCtrl := controllers.NewReservationController(db, reservationSvc)
	adminCtrl := controllers.NewAdminController(db)
	paymentCtrl := controllers.NewPaymentController(db, payments)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/static/index.html")
	})

	// The reserve form lists bookable tables and submits the booking
	r.GET("/reserve", tableCtrl.FindTablesByStatus)
	r.POST("/reserve", reservationCtrl.CreateReservation)

	r.GET("/tables", tableCtrl.GetAllTables)

	r.GET("/menus", menuCtrl.GetAllMenus)
	r.GET("/menus/specials", menuCtrl.GetSpecials)

	r.POST("/reservations", reservationCtrl.CreateReservation)

	// Rate limiter for the admin login
	public := r.Group("/admin")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware(issuer, identities))

	auth.GET("/profile", userCtrl.GetProfile)
	auth.GET("/dashboard/stats", adminCtrl.GetDashboardStats)

	// RESERVATIONS
	auth.GET("/reservations", reservationCtrl.GetAllReservations)
	auth.GET("/reservations/:reservation_id", reservationCtrl.GetReservationByID)

	// TABLES (managed out of band of the public booking surface)
	auth.GET("/tables", tableCtrl.GetAllTables)
	auth.POST("/tables", tableCtrl.CreateTable)
	auth.GET("/tables/:table_id", tableCtrl.GetTableByID)
	auth.PATCH("/tables/:table_id", tableCtrl.UpdateTableStatus)
	auth.DELETE("/tables/:table_id", tableCtrl.DeleteTable)

	// PAYMENTS
	auth.GET("/payments/config", paymentCtrl.GetPaymentConfig)
	auth.POST("/reservations/:reservation_id/deposit", paymentCtrl.ChargeDeposit)
	auth.GET("/payments/:order_id/status", paymentCtrl.CheckDepositStatus)

	return r
}
