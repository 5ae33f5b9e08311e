package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Yoon-Seong-hyun/pajuon/services"
)

// DeckController handles HTTP requests for the candidate deck
type DeckController struct {
	DeckService *services.DeckService
}

// NewDeckController creates a new DeckController instance
func NewDeckController(deckService *services.DeckService) *DeckController {
	return &DeckController{DeckService: deckService}
}

// HandleOpen opens a deck session and returns the first candidate
func (dc *DeckController) HandleOpen(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ActorID       string `json:"actorId"`
		PreferenceTag string `json:"preferenceTag"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.ActorID == "" {
		http.Error(w, "actorId is required", http.StatusBadRequest)
		return
	}

	current, err := dc.DeckService.Open(r.Context(), request.ActorID, request.PreferenceTag)
	if errors.Is(err, services.ErrEmptyDeck) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Println("Error opening deck:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{"current": current})
}

// HandleCurrent returns the candidate currently presented to the actor
func (dc *DeckController) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	actorID := r.URL.Query().Get("actorId")
	if actorID == "" {
		http.Error(w, "actorId is required", http.StatusBadRequest)
		return
	}

	current, err := dc.DeckService.Current(actorID)
	if errors.Is(err, services.ErrNoSession) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{"current": current})
}
