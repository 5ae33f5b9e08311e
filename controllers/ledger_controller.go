package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/Yoon-Seong-hyun/pajuon/services"
)

// LedgerController handles HTTP requests for bean balances
type LedgerController struct {
	LedgerService *services.LedgerService
}

// NewLedgerController creates a new LedgerController instance
func NewLedgerController(ledgerService *services.LedgerService) *LedgerController {
	return &LedgerController{LedgerService: ledgerService}
}

// HandleGetBalance returns a user's current bean count
func (lc *LedgerController) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	beans, err := lc.LedgerService.GetBalance(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{"userId": userID, "beans": beans})
}
