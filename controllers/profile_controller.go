package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Yoon-Seong-hyun/pajuon/services"
)

// ProfileController handles HTTP requests for candidate profiles
type ProfileController struct {
	ProfileService *services.ProfileService
}

// NewProfileController creates a new ProfileController instance
func NewProfileController(profileService *services.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// HandleGetProfile returns one profile's full card, e.g. after an unlock
func (pc *ProfileController) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	profileID := r.URL.Query().Get("profileId")
	if profileID == "" {
		http.Error(w, "profileId is required", http.StatusBadRequest)
		return
	}

	profile, err := pc.ProfileService.GetProfile(r.Context(), profileID)
	if errors.Is(err, services.ErrNotFound) {
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(profile)
}
