package routes

import (
	"github.com/Yoon-Seong-hyun/pajuon/controllers"
	"github.com/Yoon-Seong-hyun/pajuon/services"

	"github.com/gorilla/mux"
)

// RegisterLedgerRoutes sets up routes for bean balances under /api/ledger
func RegisterLedgerRoutes(r *mux.Router, ledgerService *services.LedgerService) {
	controller := controllers.NewLedgerController(ledgerService)

	ledgerRouter := r.PathPrefix("/api/ledger").Subrouter()
	ledgerRouter.HandleFunc("/balance", controller.HandleGetBalance).Methods("GET")
}
