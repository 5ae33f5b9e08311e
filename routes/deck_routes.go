package routes

import (
	"github.com/Yoon-Seong-hyun/pajuon/controllers"
	"github.com/Yoon-Seong-hyun/pajuon/services"

	"github.com/gorilla/mux"
)

// RegisterDeckRoutes sets up routes for the candidate deck under /api/deck
func RegisterDeckRoutes(r *mux.Router, deckService *services.DeckService) {
	controller := controllers.NewDeckController(deckService)

	deckRouter := r.PathPrefix("/api/deck").Subrouter()
	deckRouter.HandleFunc("/open", controller.HandleOpen).Methods("POST")
	deckRouter.HandleFunc("/current", controller.HandleCurrent).Methods("GET")
}
