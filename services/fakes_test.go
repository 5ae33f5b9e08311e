package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Yoon-Seong-hyun/pajuon/config"
	"github.com/Yoon-Seong-hyun/pajuon/models"

	"github.com/google/uuid"
)

// In-memory stores mirroring the DynamoDB-backed implementations, with the
// same conditional-write semantics, so engine behavior can be exercised
// without a live table.

type memInteractions struct {
	mu          sync.Mutex
	records     []models.Interaction
	failLookups bool
}

func (m *memInteractions) Record(ctx context.Context, interaction models.Interaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, interaction)
	return nil
}

func (m *memInteractions) HasQualifyingAction(ctx context.Context, actorID, targetID string, actionTypes []string) (bool, error) {
	if m.failLookups {
		return false, errors.New("lookup timed out")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, interaction := range m.records {
		if interaction.ActorID != actorID || interaction.TargetID != targetID {
			continue
		}
		for _, actionType := range actionTypes {
			if interaction.ActionType == actionType {
				return true, nil
			}
		}
	}
	return false, nil
}

func (m *memInteractions) ExcludedTargets(ctx context.Context, actorID string) (map[string]struct{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	targets := make(map[string]struct{})
	for _, interaction := range m.records {
		if interaction.ActorID == actorID {
			targets[interaction.TargetID] = struct{}{}
		}
	}
	return targets, nil
}

func (m *memInteractions) count(actorID, targetID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, interaction := range m.records {
		if interaction.ActorID == actorID && interaction.TargetID == targetID {
			n++
		}
	}
	return n
}

type memLedger struct {
	mu         sync.Mutex
	balances   map[string]int
	store      *memInteractions
	failDebits bool
}

func newMemLedger(store *memInteractions) *memLedger {
	return &memLedger{balances: make(map[string]int), store: store}
}

func (m *memLedger) GetBalance(ctx context.Context, userID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[userID], nil
}

func (m *memLedger) DebitAndRecord(ctx context.Context, interaction models.Interaction) error {
	if m.failDebits {
		return errors.New("ledger unavailable")
	}
	m.mu.Lock()
	if m.balances[interaction.ActorID] < interaction.CostPaid {
		m.mu.Unlock()
		return ErrInsufficientFunds
	}
	m.balances[interaction.ActorID] -= interaction.CostPaid
	m.mu.Unlock()
	return m.store.Record(ctx, interaction)
}

type memChannels struct {
	mu          sync.Mutex
	channels    map[string]models.Channel
	creates     int
	failCreates bool
}

func newMemChannels() *memChannels {
	return &memChannels{channels: make(map[string]models.Channel)}
}

func (m *memChannels) CreateIfAbsent(ctx context.Context, a, b string) (models.Channel, bool, error) {
	if m.failCreates {
		return models.Channel{}, false, errors.New("channel store unavailable")
	}
	pairKey := models.ChannelPairKey(a, b)
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.channels[pairKey]; ok {
		return existing, false, nil
	}
	channel := models.Channel{
		PairKey:      pairKey,
		ChannelID:    uuid.NewString(),
		Participants: []string{a, b},
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	m.channels[pairKey] = channel
	m.creates++
	return channel, true, nil
}

type memDirectory struct {
	profiles []models.Profile
}

func (m *memDirectory) ListCandidates(ctx context.Context, actorID string, excluding map[string]struct{}, preferenceTag string, limit int) ([]models.Profile, error) {
	var out []models.Profile
	for _, profile := range m.profiles {
		if profile.ProfileID == actorID {
			continue
		}
		if _, excluded := excluding[profile.ProfileID]; excluded {
			continue
		}
		if preferenceTag != "" && profile.GenderTag != preferenceTag {
			continue
		}
		out = append(out, profile)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type engineFixture struct {
	interactions *memInteractions
	ledger       *memLedger
	channels     *memChannels
	deck         *DeckService
	matches      *MatchService
	actions      *ActionService
}

func newEngineFixture(profiles []models.Profile) *engineFixture {
	interactions := &memInteractions{}
	ledger := newMemLedger(interactions)
	channels := newMemChannels()
	directory := &memDirectory{profiles: profiles}
	deck := NewDeckService(directory, interactions, 10)
	matches := &MatchService{Interactions: interactions, Channels: channels}
	actions := &ActionService{
		Interactions: interactions,
		Ledger:       ledger,
		Matches:      matches,
		Deck:         deck,
		Costs:        config.CostSchedule{Like: 5, Superlike: 20, Unlock: 30, DirectMessage: 50},
	}
	return &engineFixture{
		interactions: interactions,
		ledger:       ledger,
		channels:     channels,
		deck:         deck,
		matches:      matches,
		actions:      actions,
	}
}

func candidate(id, genderTag string) models.Profile {
	return models.Profile{ProfileID: id, Name: id, Age: 27, GenderTag: genderTag}
}
