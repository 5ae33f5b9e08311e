package routes

import (
	"github.com/Yoon-Seong-hyun/pajuon/controllers"
	"github.com/Yoon-Seong-hyun/pajuon/services"

	"github.com/gorilla/mux"
)

// RegisterProfileRoutes sets up routes for profile reads under /api/profiles
func RegisterProfileRoutes(r *mux.Router, profileService *services.ProfileService) {
	controller := controllers.NewProfileController(profileService)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()
	profileRouter.HandleFunc("", controller.HandleGetProfile).Methods("GET")
}
