package services

import (
	"context"

	"github.com/Yoon-Seong-hyun/pajuon/models"
)

// Store contracts consumed by the engine services. The DynamoDB-backed
// implementations live in this package; tests substitute in-memory ones.

// ProfileDirectory supplies candidate profiles. Implemented by ProfileService.
type ProfileDirectory interface {
	ListCandidates(ctx context.Context, actorID string, excluding map[string]struct{}, preferenceTag string, limit int) ([]models.Profile, error)
}

// InteractionStore is the append/query surface of the interaction log.
// Implemented by InteractionService.
type InteractionStore interface {
	Record(ctx context.Context, interaction models.Interaction) error
	HasQualifyingAction(ctx context.Context, actorID, targetID string, actionTypes []string) (bool, error)
	ExcludedTargets(ctx context.Context, actorID string) (map[string]struct{}, error)
}

// LedgerStore guards the bean balance. A debit commits in the same logical
// unit as the interaction record it pays for. Implemented by LedgerService.
type LedgerStore interface {
	GetBalance(ctx context.Context, userID string) (int, error)
	DebitAndRecord(ctx context.Context, interaction models.Interaction) error
}

// ChannelStore owns channel existence. Creation is insert-if-absent on the
// canonical pair key. Implemented by ChannelService.
type ChannelStore interface {
	CreateIfAbsent(ctx context.Context, a, b string) (models.Channel, bool, error)
}
