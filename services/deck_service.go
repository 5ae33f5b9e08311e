package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Yoon-Seong-hyun/pajuon/models"
)

// ErrEmptyDeck is returned when the profile directory has no candidates at
// all, even before filtering.
var ErrEmptyDeck = errors.New("no candidates available")

// ErrNoSession is returned when an actor acts without an open deck session.
var ErrNoSession = errors.New("no open deck session")

// DeckService keeps a per-actor cursor over an ordered candidate sequence.
// Sessions are process-local; advancing the cursor mutates nothing durable.
type DeckService struct {
	Directory    ProfileDirectory
	Interactions InteractionStore
	PageSize     int

	mu       sync.Mutex
	sessions map[string]*deckSession
}

type deckSession struct {
	profiles []models.Profile
	cursor   int
}

func NewDeckService(directory ProfileDirectory, interactions InteractionStore, pageSize int) *DeckService {
	return &DeckService{
		Directory:    directory,
		Interactions: interactions,
		PageSize:     pageSize,
		sessions:     make(map[string]*deckSession),
	}
}

// Open builds a fresh deck for the actor and returns the first candidate.
// Targets the actor already acted on are excluded. When the preference
// filter empties the deck, the unfiltered default pool is used instead:
// availability wins over strict filtering.
func (ds *DeckService) Open(ctx context.Context, actorID, preferenceTag string) (models.Profile, error) {
	excluded, err := ds.Interactions.ExcludedTargets(ctx, actorID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to load exclusions: %w", err)
	}

	profiles, err := ds.Directory.ListCandidates(ctx, actorID, excluded, preferenceTag, ds.PageSize)
	if err != nil {
		return models.Profile{}, err
	}
	if len(profiles) == 0 {
		profiles, err = ds.Directory.ListCandidates(ctx, actorID, nil, "", ds.PageSize)
		if err != nil {
			return models.Profile{}, err
		}
	}
	if len(profiles) == 0 {
		return models.Profile{}, ErrEmptyDeck
	}

	ds.mu.Lock()
	ds.sessions[actorID] = &deckSession{profiles: profiles}
	ds.mu.Unlock()

	return profiles[0], nil
}

// Current returns the candidate under the cursor.
func (ds *DeckService) Current(actorID string) (models.Profile, error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	session, ok := ds.sessions[actorID]
	if !ok {
		return models.Profile{}, ErrNoSession
	}
	return session.profiles[session.cursor], nil
}

// Advance moves the cursor to the next candidate, wrapping when the
// sequence is exhausted so interaction never hits a hard stop.
func (ds *DeckService) Advance(actorID string) (models.Profile, error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	session, ok := ds.sessions[actorID]
	if !ok {
		return models.Profile{}, ErrNoSession
	}
	session.cursor = (session.cursor + 1) % len(session.profiles)
	return session.profiles[session.cursor], nil
}

// Close drops the actor's session.
func (ds *DeckService) Close(actorID string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.sessions, actorID)
}
