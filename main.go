package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/Yoon-Seong-hyun/pajuon/config"
	"github.com/Yoon-Seong-hyun/pajuon/routes"
	"github.com/Yoon-Seong-hyun/pajuon/services"
	"github.com/Yoon-Seong-hyun/pajuon/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient(cfg.AWSRegion)
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Services
	profileService := &services.ProfileService{Dynamo: dynamoService}
	interactionService := &services.InteractionService{Dynamo: dynamoService}
	ledgerService := &services.LedgerService{Dynamo: dynamoService}
	channelService := &services.ChannelService{Dynamo: dynamoService}
	deckService := services.NewDeckService(profileService, interactionService, cfg.DeckPageSize)
	matchService := &services.MatchService{Interactions: interactionService, Channels: channelService}
	actionService := &services.ActionService{
		Interactions: interactionService,
		Ledger:       ledgerService,
		Matches:      matchService,
		Deck:         deckService,
		Costs:        cfg.Costs,
	}

	// Start the Socket.IO match notifier
	notifier := socket.NewMatchNotifier()
	go func() {
		if err := notifier.Server.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer notifier.Server.Close()

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Pajuon")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	r.Handle("/socket.io/", notifier.Server)

	// Register routes
	routes.RegisterProfileRoutes(r, profileService)
	routes.RegisterDeckRoutes(r, deckService)
	routes.RegisterActionRoutes(r, actionService, notifier)
	routes.RegisterLedgerRoutes(r, ledgerService)
	routes.RegisterChannelRoutes(r, channelService)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
