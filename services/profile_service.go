package services

import (
	"context"
	"fmt"

	"github.com/Yoon-Seong-hyun/pajuon/models"
	"github.com/Yoon-Seong-hyun/pajuon/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ProfileService reads candidate profiles from the external directory table.
type ProfileService struct {
	Dynamo *DynamoService
}

// GetProfile retrieves a single profile by id.
func (ps *ProfileService) GetProfile(ctx context.Context, profileID string) (*models.Profile, error) {
	key := map[string]types.AttributeValue{
		"profileId": &types.AttributeValueMemberS{Value: profileID},
	}
	item, err := ps.Dynamo.GetItem(ctx, models.ProfilesTable, key)
	if err != nil {
		return nil, err
	}

	var profile models.Profile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// ListCandidates returns up to limit profiles carrying the preference tag,
// excluding the actor themselves and every id in excluding. An empty
// preferenceTag skips the tag filter. May return fewer than limit, or none.
func (ps *ProfileService) ListCandidates(ctx context.Context, actorID string, excluding map[string]struct{}, preferenceTag string, limit int) ([]models.Profile, error) {
	matchFields := map[string]string{}
	if preferenceTag != "" {
		matchFields["genderTag"] = preferenceTag
	}

	var profiles []models.Profile
	err := ps.Dynamo.ScanWithFilter(ctx, models.ProfilesTable, func(item map[string]types.AttributeValue) bool {
		id := utils.ExtractString(item, "profileId")
		if id == "" || id == actorID {
			return false
		}
		_, excluded := excluding[id]
		return !excluded
	}, matchFields, &profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	if limit > 0 && len(profiles) > limit {
		profiles = profiles[:limit]
	}
	return profiles, nil
}
