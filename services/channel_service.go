package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Yoon-Seong-hyun/pajuon/models"
	"github.com/Yoon-Seong-hyun/pajuon/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ChannelService owns channel existence. It never deletes channels and
// never creates more than one per unordered pair.
type ChannelService struct {
	Dynamo *DynamoService
}

// CreateIfAbsent creates the channel for the pair {a, b}, or returns the
// existing one when another resolution already created it. The write is
// conditional on the canonical pair key being absent, so two racing callers
// serialize on the table: one creates, the other reads the winner's row.
func (cs *ChannelService) CreateIfAbsent(ctx context.Context, a, b string) (models.Channel, bool, error) {
	pairKey := models.ChannelPairKey(a, b)
	channel := models.Channel{
		PairKey:      pairKey,
		ChannelID:    uuid.NewString(),
		Participants: []string{a, b},
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	err := cs.Dynamo.PutItemIfAbsent(ctx, models.ChannelsTable, channel, "pairKey")
	if err == nil {
		log.Printf("🎉 Channel created: %s (%s)", channel.ChannelID, pairKey)
		return channel, true, nil
	}
	if !errors.Is(err, ErrConditionFailed) {
		return models.Channel{}, false, fmt.Errorf("failed to create channel: %w", err)
	}

	existing, err := cs.getByPairKey(ctx, pairKey)
	if err != nil {
		return models.Channel{}, false, err
	}
	return existing, false, nil
}

func (cs *ChannelService) getByPairKey(ctx context.Context, pairKey string) (models.Channel, error) {
	key := map[string]types.AttributeValue{
		"pairKey": &types.AttributeValueMemberS{Value: pairKey},
	}
	item, err := cs.Dynamo.GetItem(ctx, models.ChannelsTable, key)
	if err != nil {
		return models.Channel{}, fmt.Errorf("failed to load channel %s: %w", pairKey, err)
	}

	var channel models.Channel
	if err := attributevalue.UnmarshalMap(item, &channel); err != nil {
		return models.Channel{}, fmt.Errorf("failed to unmarshal channel: %w", err)
	}
	return channel, nil
}

// ChannelsForUser lists every channel the user participates in.
func (cs *ChannelService) ChannelsForUser(ctx context.Context, userID string) ([]models.Channel, error) {
	var channels []models.Channel
	err := cs.Dynamo.ScanWithFilter(ctx, models.ChannelsTable, func(item map[string]types.AttributeValue) bool {
		for _, participant := range utils.ExtractStringList(item, "participants") {
			if participant == userID {
				return true
			}
		}
		return false
	}, nil, &channels)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	return channels, nil
}
