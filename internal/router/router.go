package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateCar(c *ginext.Context)
	GetCar(c *ginext.Context)
	ListCars(c *ginext.Context)
	GetCarAvailability(c *ginext.Context)
	GetCarBookings(c *ginext.Context)
	CreateHold(c *ginext.Context)
	GetBooking(c *ginext.Context)
	PayBooking(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CreateCustomer(c *ginext.Context)
	ListCustomers(c *ginext.Context)
	GetCustomerBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Cars
		api.POST("/cars", h.CreateCar)
		api.GET("/cars", h.ListCars)
		api.GET("/cars/:id", h.GetCar)
		api.GET("/cars/:id/availability", h.GetCarAvailability)
		api.GET("/cars/:id/bookings", h.GetCarBookings)

		// Bookings
		api.POST("/bookings", h.CreateHold)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/pay", h.PayBooking)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		// Customers
		api.POST("/customers", h.CreateCustomer)
		api.GET("/customers", h.ListCustomers)
		api.GET("/customers/:id/bookings", h.GetCustomerBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
