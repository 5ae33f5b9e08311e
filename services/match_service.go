package services

import (
	"context"
	"log"

	"github.com/Yoon-Seong-hyun/pajuon/models"
)

// Match outcomes. Callers treat the two matched outcomes identically for
// user-facing purposes; tests distinguish them to verify no duplication.
const (
	MatchOutcomeNone     = "noMatch"
	MatchOutcomeNew      = "matchedNewChannel"
	MatchOutcomeExisting = "matchedExistingChannel"
)

// MatchResult reports the reciprocity check for one resolved action.
type MatchResult struct {
	Outcome   string `json:"outcome"`
	ChannelID string `json:"channelId,omitempty"`
}

// Matched reports whether the result should surface as "it's a match".
func (r MatchResult) Matched() bool {
	return r.Outcome != MatchOutcomeNone
}

// MatchService detects mutual interest and creates the shared channel.
type MatchService struct {
	Interactions InteractionStore
	Channels     ChannelStore
}

// Check looks for a qualifying action from targetID back at actorID and, if
// one exists, resolves the channel for the pair. It must be invoked only
// after the actor's own qualifying interaction is durably recorded.
//
// An unreliable reciprocal read resolves to no match rather than risking a
// fabricated channel; the recorded interaction lets the other side complete
// the match on their next action.
func (ms *MatchService) Check(ctx context.Context, actorID, targetID string) (MatchResult, error) {
	mutual, err := ms.Interactions.HasQualifyingAction(ctx, targetID, actorID, models.QualifyingActions)
	if err != nil {
		log.Printf("⚠️ Reciprocal lookup failed for %s/%s, treating as no match: %v", actorID, targetID, err)
		return MatchResult{Outcome: MatchOutcomeNone}, nil
	}
	if !mutual {
		return MatchResult{Outcome: MatchOutcomeNone}, nil
	}

	channel, created, err := ms.Channels.CreateIfAbsent(ctx, actorID, targetID)
	if err != nil {
		return MatchResult{}, err
	}
	if created {
		log.Printf("🎉 Match confirmed: %s ❤️ %s (channel %s)", actorID, targetID, channel.ChannelID)
		return MatchResult{Outcome: MatchOutcomeNew, ChannelID: channel.ChannelID}, nil
	}
	return MatchResult{Outcome: MatchOutcomeExisting, ChannelID: channel.ChannelID}, nil
}
