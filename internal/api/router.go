package api

import (
	"kairos/turn-engine/internal/api/handler/ticket"
	"kairos/turn-engine/internal/api/middleware"
)

// SetupAPIRoutes
// @title						Turn Queue Engine
// @version         			1.0.0
// @description     			Walk-in service ticketing APIs
// @Host 						localhost:8080
// @BasePath  					/
// @Schemes 					https
func (s *Server) SetupAPIRoutes(ticketHandler *ticket.TicketHandler) {
	r := s.engine

	v1 := r.Group("v1")
	{
		// public: kiosk, waiting clients, display board
		v1.POST("/tickets", ticketHandler.Create)
		v1.POST("/tickets/cancel", ticketHandler.Cancel)
		v1.GET("/tickets/status", ticketHandler.Status)
		v1.GET("/services", ticketHandler.Services)
		v1.GET("/services/:id/summary", ticketHandler.Summary)
		v1.GET("/display/recent", ticketHandler.Recent)
		v1.GET("/events", ticketHandler.Events)
	}

	staff := r.Group("v1")
	staff.Use(middleware.HandleAuth())
	{
		staff.POST("/services/:id/advance", ticketHandler.Advance)
		staff.GET("/tickets", ticketHandler.List)
		staff.GET("/staff/handled", ticketHandler.Handled)
	}
}
