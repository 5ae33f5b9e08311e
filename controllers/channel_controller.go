package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/Yoon-Seong-hyun/pajuon/services"
)

// ChannelController handles HTTP requests for communication channels
type ChannelController struct {
	ChannelService *services.ChannelService
}

// NewChannelController creates a new ChannelController instance
func NewChannelController(channelService *services.ChannelService) *ChannelController {
	return &ChannelController{ChannelService: channelService}
}

// HandleList returns every channel the user participates in
func (cc *ChannelController) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	channels, err := cc.ChannelService.ChannelsForUser(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{"channels": channels})
}
