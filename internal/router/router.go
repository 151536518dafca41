package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	AcceptBooking(c *ginext.Context)
	RejectBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ConfirmArrival(c *ginext.Context)
	ConfirmDeparture(c *ginext.Context)
	ListFacilities(c *ginext.Context)
	ListFacilitySpots(c *ginext.Context)
	ListFacilityBookings(c *ginext.Context)
	ListNotifications(c *ginext.Context)
	MarkNotificationRead(c *ginext.Context)
	ExpirePending(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		authed := api.Group("", auth)
		{
			// Facilities
			authed.GET("/estacionamentos", h.ListFacilities)
			authed.GET("/estacionamentos/:id/vagas", h.ListFacilitySpots)
			authed.GET("/estacionamentos/:id/bookings", h.ListFacilityBookings)

			// Bookings
			authed.POST("/bookings", h.CreateBooking)
			authed.GET("/bookings", h.ListMyBookings)
			authed.GET("/bookings/:id", h.GetBooking)
			authed.POST("/bookings/:id/accept", h.AcceptBooking)
			authed.POST("/bookings/:id/reject", h.RejectBooking)
			authed.POST("/bookings/:id/cancel", h.CancelBooking)
			authed.POST("/bookings/:id/arrival", h.ConfirmArrival)
			authed.POST("/bookings/:id/departure", h.ConfirmDeparture)

			// Notifications
			authed.GET("/notifications", h.ListNotifications)
			authed.POST("/notifications/:id/read", h.MarkNotificationRead)
		}
	}

	// For external cron setups; the built-in scheduler covers the common case.
	// The sweep is idempotent but the trigger still requires a valid token.
	router.POST("/internal/expire", auth, h.ExpirePending)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
