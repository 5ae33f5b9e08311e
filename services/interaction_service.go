package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Yoon-Seong-hyun/pajuon/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// InteractionService persists the append-only actor→target action log.
type InteractionService struct {
	Dynamo *DynamoService
}

// NewInteraction builds an interaction record with a fresh id and timestamp.
func NewInteraction(actorID, targetID, actionType string, costPaid int, note string) models.Interaction {
	return models.Interaction{
		TargetID:      targetID,
		InteractionID: uuid.NewString(),
		ActorID:       actorID,
		ActionType:    actionType,
		CostPaid:      costPaid,
		Note:          note,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
}

// Record appends an interaction.
func (s *InteractionService) Record(ctx context.Context, interaction models.Interaction) error {
	if err := s.Dynamo.PutItem(ctx, models.InteractionsTable, interaction); err != nil {
		log.Printf("❌ Failed to save interaction: %v", err)
		return err
	}
	log.Printf("✅ Interaction saved: %s -> %s (%s)", interaction.ActorID, interaction.TargetID, interaction.ActionType)
	return nil
}

// HasQualifyingAction reports whether actorID has recorded any of the given
// action types against targetID. Queries the actor GSI and drains every page:
// a long swipe history must not hide the one record that decides a match or
// a duplicate charge.
func (s *InteractionService) HasQualifyingAction(ctx context.Context, actorID, targetID string, actionTypes []string) (bool, error) {
	keyCondition := "actorId = :actor"
	expressionValues := map[string]types.AttributeValue{
		":actor": &types.AttributeValueMemberS{Value: actorID},
	}

	items, err := s.Dynamo.QueryAllItemsWithIndex(ctx, models.InteractionsTable, models.ActorIndex, keyCondition, expressionValues, 100)
	if err != nil {
		return false, fmt.Errorf("failed to query %s: %w", models.ActorIndex, err)
	}

	for _, item := range items {
		var interaction models.Interaction
		if err := attributevalue.UnmarshalMap(item, &interaction); err != nil {
			log.Printf("❌ Error unmarshalling interaction: %v", err)
			continue
		}
		if interaction.TargetID != targetID {
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

// ExcludedTargets returns every target the actor has recorded any action
// against. The deck uses this as its exclusion set.
func (s *InteractionService) ExcludedTargets(ctx context.Context, actorID string) (map[string]struct{}, error) {
	keyCondition := "actorId = :actor"
	expressionValues := map[string]types.AttributeValue{
		":actor": &types.AttributeValueMemberS{Value: actorID},
	}

	items, err := s.Dynamo.QueryAllItemsWithIndex(ctx, models.InteractionsTable, models.ActorIndex, keyCondition, expressionValues, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch interactions: %w", err)
	}

	targets := make(map[string]struct{})
	for _, item := range items {
		var interaction models.Interaction
		if err := attributevalue.UnmarshalMap(item, &interaction); err != nil {
			log.Printf("❌ Error unmarshalling interaction: %v", err)
			continue
		}
		targets[interaction.TargetID] = struct{}{}
	}
	return targets, nil
}
