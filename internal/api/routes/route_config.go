package routes

import (
	"Savoria-Backend/internal/api/handlers"
	"Savoria-Backend/internal/middleware"
	"Savoria-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	MenuHandler        handlers.MenuHandler
	CartHandler        handlers.CartHandler
	OrderHandler       handlers.OrderHandler
	ReservationHandler handlers.ReservationHandler
	SettingsHandler    handlers.SettingsHandler
	PaymentHandler     handlers.PaymentHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Menu()
	c.Cart()
	c.Order()
	c.Reservation()
	c.Settings()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/logout", c.UserHandler.Logout)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Menu() {
	menu := c.App.Group("/api/v1/menu")

	menu.Get("/categories", c.MenuHandler.GetCategories)
	menu.Get("/foods", c.MenuHandler.GetFoods)
	menu.Get("/foods/:id", c.MenuHandler.GetFoodDetails)

	admin := menu.Group("", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware())
	{
		admin.Post("/categories", c.MenuHandler.CreateCategory)
		admin.Put("/categories/:id", c.MenuHandler.UpdateCategory)
		admin.Delete("/categories/:id", c.MenuHandler.DeleteCategory)
		admin.Post("/foods", c.MenuHandler.CreateFood)
		admin.Put("/foods/:id", c.MenuHandler.UpdateFood)
		admin.Delete("/foods/:id", c.MenuHandler.DeleteFood)
		admin.Post("/foods/:id/image", c.MenuHandler.UploadFoodImage)
	}
}

// Cart works for both guests and logged-in users, so the whole group runs
// behind the session middleware instead of the auth one.
func (c *Config) Cart() {
	cart := c.App.Group("/api/v1/cart", c.Middleware.SessionMiddleware(c.JWTService))

	cart.Get("", c.CartHandler.GetCart)
	cart.Post("/add", c.CartHandler.AddToCart)
	cart.Put("/update/:id", c.CartHandler.UpdateCartItem)
	cart.Delete("/remove/:id", c.CartHandler.RemoveCartItem)
}

func (c *Config) Order() {
	order := c.App.Group("/api/v1/orders", c.Middleware.AuthMiddleware(c.JWTService))

	order.Post("/checkout", c.OrderHandler.Checkout)
	order.Get("", c.OrderHandler.GetUserOrders)
	order.Get("/statistics", c.Middleware.AdminMiddleware(), c.OrderHandler.GetStatistics)
	order.Get("/:id", c.OrderHandler.GetOrder)
	order.Post("/:id/cancel", c.OrderHandler.CancelOrder)
	order.Post("/:id/receipt", c.OrderHandler.UploadReceipt)
	order.Patch("/:id/status", c.Middleware.AdminMiddleware(), c.OrderHandler.UpdateStatus)
}

func (c *Config) Reservation() {
	reservation := c.App.Group("/api/v1/reservations", c.Middleware.SessionMiddleware(c.JWTService))

	reservation.Post("", c.ReservationHandler.CreateReservation)
	reservation.Get("/available-times", c.ReservationHandler.GetAvailableTimes)
	reservation.Get("/my", c.ReservationHandler.GetUserReservations)
	reservation.Patch("/:id/status",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.AdminMiddleware(),
		c.ReservationHandler.UpdateStatus,
	)
}

func (c *Config) Settings() {
	settings := c.App.Group("/api/v1/settings")

	settings.Get("", c.SettingsHandler.GetSettings)
	settings.Patch("", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware(), c.SettingsHandler.UpdateSettings)
	settings.Post("/logo", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware(), c.SettingsHandler.UploadLogo)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.PaymentHandler.HandleWebhook)
}
