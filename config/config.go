package config

import (
	"log"
	"os"
	"strconv"

	"github.com/Yoon-Seong-hyun/pajuon/models"

	"github.com/joho/godotenv"
)

// CostSchedule maps chargeable action types to their bean cost. Pass is
// always free and never consults the schedule.
type CostSchedule struct {
	Like          int
	Superlike     int
	Unlock        int
	DirectMessage int
}

// CostOf returns the bean cost for an action type.
func (c CostSchedule) CostOf(actionType string) int {
	switch actionType {
	case models.ActionLike:
		return c.Like
	case models.ActionSuperlike:
		return c.Superlike
	case models.ActionUnlock:
		return c.Unlock
	case models.ActionDM:
		return c.DirectMessage
	default:
		return 0
	}
}

// Config holds all externally supplied settings.
type Config struct {
	Port         string
	AWSRegion    string
	DeckPageSize int
	Costs        CostSchedule
}

// Load reads configuration from the environment, with .env as a fallback.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "8080"),
		AWSRegion:    os.Getenv("AWS_REGION"),
		DeckPageSize: getEnvInt("DECK_PAGE_SIZE", 10),
		Costs: CostSchedule{
			Like:          getEnvInt("COST_LIKE", 5),
			Superlike:     getEnvInt("COST_SUPERLIKE", 20),
			Unlock:        getEnvInt("COST_UNLOCK", 30),
			DirectMessage: getEnvInt("COST_DM", 50),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Invalid value for %s, using default %d", key, fallback)
	}
	return fallback
}
