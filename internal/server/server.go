package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"storefront-backend/internal/handler"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/service"
)

type Server struct {
	echo      *echo.Echo
	jwtSecret string

	checkoutHandler  *handler.CheckoutHandler
	orderHandler     *handler.OrderHandler
	paymentHandler   *handler.PaymentHandler
	addressHandler   *handler.AddressHandler
	savedCardHandler *handler.SavedCardHandler
}

func NewServer(
	jwtSecret string,
	checkoutService service.CheckoutService,
	orderService service.OrderService,
	paymentService service.PaymentService,
	addressService service.AddressService,
	savedCardService service.SavedCardService,
	userService service.UserService,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Err(v.Error).
				Msg("request")
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echo:             e,
		jwtSecret:        jwtSecret,
		checkoutHandler:  handler.NewCheckoutHandler(checkoutService, userService),
		orderHandler:     handler.NewOrderHandler(orderService, userService),
		paymentHandler:   handler.NewPaymentHandler(paymentService),
		addressHandler:   handler.NewAddressHandler(addressService, userService),
		savedCardHandler: handler.NewSavedCardHandler(savedCardService, userService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	auth := middleware.Auth(s.jwtSecret)

	// -------- checkout --------
	checkout := api.Group("/checkout", auth)
	checkout.POST("/complete", s.checkoutHandler.CompleteCheckout)

	// -------- orders --------
	orders := api.Group("/orders", auth)
	orders.POST("", s.orderHandler.CreateOrder)
	orders.GET("/me", s.orderHandler.GetMyOrders)
	orders.GET("/:id", s.orderHandler.GetOrderByID)

	// -------- payments --------
	payments := api.Group("/payments", auth)
	payments.POST("", s.paymentHandler.ProcessPayment)
	payments.GET("/order/:orderId", s.paymentHandler.GetPaymentByOrderID)

	// -------- addresses --------
	addresses := api.Group("/addresses", auth)
	addresses.GET("/me", s.addressHandler.GetMyAddresses)
	addresses.POST("", s.addressHandler.CreateAddress)
	addresses.PUT("/:id", s.addressHandler.UpdateAddress)
	addresses.DELETE("/:id", s.addressHandler.DeleteAddress)
	addresses.PUT("/:id/set-default", s.addressHandler.SetDefaultAddress)

	// -------- saved cards --------
	cards := api.Group("/saved-cards", auth)
	cards.GET("/me", s.savedCardHandler.GetMySavedCards)
	cards.POST("", s.savedCardHandler.CreateSavedCard)
	cards.PUT("/:id", s.savedCardHandler.UpdateSavedCard)
	cards.DELETE("/:id", s.savedCardHandler.DeleteSavedCard)
	cards.PUT("/:id/set-default", s.savedCardHandler.SetDefaultSavedCard)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
