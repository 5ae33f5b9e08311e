package routes

import (
	"github.com/Yoon-Seong-hyun/pajuon/controllers"
	"github.com/Yoon-Seong-hyun/pajuon/services"
	"github.com/Yoon-Seong-hyun/pajuon/socket"

	"github.com/gorilla/mux"
)

// RegisterActionRoutes sets up routes for swipe resolution under /api/action
func RegisterActionRoutes(r *mux.Router, actionService *services.ActionService, notifier *socket.MatchNotifier) {
	controller := controllers.NewActionController(actionService, notifier)

	actionRouter := r.PathPrefix("/api/action").Subrouter()
	actionRouter.HandleFunc("/swipe", controller.HandleSwipe).Methods("POST")
	actionRouter.HandleFunc("/acknowledge", controller.HandleAcknowledge).Methods("POST")
}
