package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Yoon-Seong-hyun/pajuon/config"
	"github.com/Yoon-Seong-hyun/pajuon/models"
)

// ErrUnknownAction is returned for an action type the resolver does not know.
var ErrUnknownAction = errors.New("unknown action type")

// ErrWrongTarget is returned when the requested target is not the candidate
// currently presented to the actor.
var ErrWrongTarget = errors.New("target is not the current candidate")

// ActionResult is the terminal state of one candidate-decision cycle.
type ActionResult struct {
	Status     string          `json:"status"`
	ActionType string          `json:"actionType"`
	CostPaid   int             `json:"costPaid"`
	ChannelID  string          `json:"channelId,omitempty"`
	NewChannel bool            `json:"newChannel,omitempty"`
	Next       *models.Profile `json:"next,omitempty"`
}

// ActionService resolves one action per presented candidate: it validates
// the action, authorizes and debits the cost, records the interaction, and
// hands qualifying actions to the match detector.
type ActionService struct {
	Interactions InteractionStore
	Ledger       LedgerStore
	Matches      *MatchService
	Deck         *DeckService
	Costs        config.CostSchedule
}

// Resolve runs the decision cycle for the actor's current candidate.
//
// A refused debit leaves the candidate presented with no record written. A
// store failure propagates with no state applied; the resolver never retries
// on its own since replaying a debit risks a double charge. On a match the
// deck holds until Acknowledge so the caller can show the celebration first.
func (as *ActionService) Resolve(ctx context.Context, actorID, targetID, actionType, note string) (ActionResult, error) {
	if !models.KnownAction(actionType) {
		return ActionResult{}, fmt.Errorf("%w: %q", ErrUnknownAction, actionType)
	}

	current, err := as.Deck.Current(actorID)
	if err != nil {
		return ActionResult{}, err
	}
	if current.ProfileID != targetID {
		return ActionResult{}, ErrWrongTarget
	}

	if actionType == models.ActionPass {
		interaction := NewInteraction(actorID, targetID, actionType, 0, "")
		if err := as.Interactions.Record(ctx, interaction); err != nil {
			return ActionResult{}, err
		}
		next, err := as.Deck.Advance(actorID)
		if err != nil {
			return ActionResult{}, err
		}
		return ActionResult{Status: models.StatusSkipped, ActionType: actionType, Next: &next}, nil
	}

	// A terminal decision binds the pair for good: a replayed chargeable
	// action against an already-decided target must not charge again.
	decided, err := as.Interactions.HasQualifyingAction(ctx, actorID, targetID, models.TerminalActions)
	if err != nil {
		return ActionResult{}, fmt.Errorf("failed to check prior decisions: %w", err)
	}
	if decided {
		log.Printf("⚠️ %s already decided on %s, skipping charge", actorID, targetID)

		// A replayed like/superlike still re-runs the match check. If a
		// mutual like committed but channel creation failed transiently,
		// the replay is the retry path that makes the channel appear.
		if models.IsQualifying(actionType) {
			liked, err := as.Interactions.HasQualifyingAction(ctx, actorID, targetID, models.QualifyingActions)
			if err != nil {
				return ActionResult{}, fmt.Errorf("failed to check prior decisions: %w", err)
			}
			if liked {
				match, err := as.Matches.Check(ctx, actorID, targetID)
				if err != nil {
					return ActionResult{}, err
				}
				if match.Matched() {
					return ActionResult{
						Status:     models.StatusMatched,
						ActionType: actionType,
						ChannelID:  match.ChannelID,
						NewChannel: match.Outcome == MatchOutcomeNew,
					}, nil
				}
			}
		}

		next, err := as.Deck.Advance(actorID)
		if err != nil {
			return ActionResult{}, err
		}
		return ActionResult{Status: models.StatusDuplicate, ActionType: actionType, Next: &next}, nil
	}

	cost := as.Costs.CostOf(actionType)
	interaction := NewInteraction(actorID, targetID, actionType, cost, note)
	err = as.Ledger.DebitAndRecord(ctx, interaction)
	if errors.Is(err, ErrInsufficientFunds) {
		// Normal outcome: no record, no advance, candidate stays presented.
		return ActionResult{Status: models.StatusRefused, ActionType: actionType}, nil
	}
	if err != nil {
		return ActionResult{}, err
	}

	if models.IsQualifying(actionType) {
		match, err := as.Matches.Check(ctx, actorID, targetID)
		if err != nil {
			return ActionResult{}, err
		}
		if match.Matched() {
			return ActionResult{
				Status:     models.StatusMatched,
				ActionType: actionType,
				CostPaid:   cost,
				ChannelID:  match.ChannelID,
				NewChannel: match.Outcome == MatchOutcomeNew,
			}, nil
		}
	}

	next, err := as.Deck.Advance(actorID)
	if err != nil {
		return ActionResult{}, err
	}
	return ActionResult{Status: models.StatusCharged, ActionType: actionType, CostPaid: cost, Next: &next}, nil
}

// Acknowledge releases a held deck after the caller has shown the match.
func (as *ActionService) Acknowledge(actorID string) (models.Profile, error) {
	return as.Deck.Advance(actorID)
}
