package routes

import (
	"github.com/Yoon-Seong-hyun/pajuon/controllers"
	"github.com/Yoon-Seong-hyun/pajuon/services"

	"github.com/gorilla/mux"
)

// RegisterChannelRoutes sets up routes for channels under /api/channels
func RegisterChannelRoutes(r *mux.Router, channelService *services.ChannelService) {
	controller := controllers.NewChannelController(channelService)

	channelRouter := r.PathPrefix("/api/channels").Subrouter()
	channelRouter.HandleFunc("", controller.HandleList).Methods("GET")
}
