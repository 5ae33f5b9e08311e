package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Yoon-Seong-hyun/pajuon/models"
	"github.com/Yoon-Seong-hyun/pajuon/services"
	"github.com/Yoon-Seong-hyun/pajuon/socket"
)

// ActionController handles HTTP requests for swipe actions
type ActionController struct {
	ActionService *services.ActionService
	Notifier      *socket.MatchNotifier
}

// NewActionController creates a new ActionController instance
func NewActionController(actionService *services.ActionService, notifier *socket.MatchNotifier) *ActionController {
	return &ActionController{ActionService: actionService, Notifier: notifier}
}

// HandleSwipe resolves an action against the actor's current candidate
func (ac *ActionController) HandleSwipe(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ActorID  string `json:"actorId"`
		TargetID string `json:"targetId"`
		Action   string `json:"action"`
		Note     string `json:"note,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.ActorID == "" || request.TargetID == "" || request.Action == "" {
		http.Error(w, "actorId, targetId, and action are required", http.StatusBadRequest)
		return
	}

	result, err := ac.ActionService.Resolve(r.Context(), request.ActorID, request.TargetID, request.Action, request.Note)
	if errors.Is(err, services.ErrUnknownAction) || errors.Is(err, services.ErrWrongTarget) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, services.ErrNoSession) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		log.Println("Error resolving action:", err)
		http.Error(w, "action failed, no state changed", http.StatusInternalServerError)
		return
	}

	if result.Status == models.StatusMatched && ac.Notifier != nil {
		ac.Notifier.NotifyMatch(request.ActorID, request.TargetID, result.ChannelID, result.NewChannel)
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

// HandleAcknowledge advances the deck after a match has been shown
func (ac *ActionController) HandleAcknowledge(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ActorID string `json:"actorId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.ActorID == "" {
		http.Error(w, "actorId is required", http.StatusBadRequest)
		return
	}

	next, err := ac.ActionService.Acknowledge(request.ActorID)
	if errors.Is(err, services.ErrNoSession) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		log.Println("Error acknowledging match:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{"next": next})
}
