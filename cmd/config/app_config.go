package config

import (
	"Savoria-Backend/internal/api/handlers"
	"Savoria-Backend/internal/api/routes"
	"Savoria-Backend/internal/middleware"
	"Savoria-Backend/internal/utils"
	"Savoria-Backend/internal/utils/cache"
	"Savoria-Backend/internal/utils/storage"
	"Savoria-Backend/pkg/cart"
	"Savoria-Backend/pkg/jwt"
	"Savoria-Backend/pkg/menu"
	"Savoria-Backend/pkg/order"
	"Savoria-Backend/pkg/payment"
	"Savoria-Backend/pkg/reservation"
	"Savoria-Backend/pkg/settings"
	"Savoria-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	cacheClient := newCacheClient()

	// Repository
	userRepository := user.NewUserRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	cartRepository := cart.NewCartRepository(db)
	orderRepository := order.NewOrderRepository(db)
	paymentRepository := payment.NewPaymentRepository(db)
	reservationRepository := reservation.NewReservationRepository(db)
	settingsRepository := settings.NewSettingsRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	menuService := menu.NewMenuService(menuRepository, cacheClient, s3)
	cartService := cart.NewCartService(cartRepository, menuRepository, cacheClient)
	userService := user.NewUserService(userRepository, cartService, jwtService)
	orderService := order.NewOrderService(orderRepository, cartRepository, order.NewMailNotifier(), cacheClient, s3)
	paymentService := payment.NewPaymentService(paymentRepository, orderRepository, orderService, payment.NewMidtransGateway())
	reservationService := reservation.NewReservationService(reservationRepository)
	settingsService := settings.NewSettingsService(settingsRepository, cacheClient, s3)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	cartHandler := handlers.NewCartHandler(cartService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, paymentService, validator)
	reservationHandler := handlers.NewReservationHandler(reservationService, validator)
	settingsHandler := handlers.NewSettingsHandler(settingsService, validator)
	paymentHandler := handlers.NewPaymentHandler(paymentService, validator)

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		MenuHandler:        menuHandler,
		CartHandler:        cartHandler,
		OrderHandler:       orderHandler,
		ReservationHandler: reservationHandler,
		SettingsHandler:    settingsHandler,
		PaymentHandler:     paymentHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

// newCacheClient connects to redis when an address is configured and falls
// back to a no-op client otherwise, so the app still serves without redis.
func newCacheClient() cache.Client {
	addr := utils.GetConfig("REDIS_ADDR")
	if addr == "" {
		return cache.NewNoop()
	}
	client, err := cache.NewRedisClient(addr, utils.GetConfig("REDIS_PASSWORD"))
	if err != nil {
		log.Errorf("error connecting to redis at %s: %v", addr, err)
		return cache.NewNoop()
	}
	return client
}
