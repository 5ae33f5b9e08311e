package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/Yoon-Seong-hyun/pajuon/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrInsufficientFunds is the normal business outcome when a debit would
// take a balance below zero. Callers surface a top-up prompt, not a fault.
var ErrInsufficientFunds = errors.New("insufficient funds")

// LedgerService owns the bean balance table.
type LedgerService struct {
	Dynamo *DynamoService
}

// GetBalance returns the current bean count. A missing row reads as zero.
func (ls *LedgerService) GetBalance(ctx context.Context, userID string) (int, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	item, err := ls.Dynamo.GetItem(ctx, models.BalancesTable, key)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var balance models.Balance
	if err := attributevalue.UnmarshalMap(item, &balance); err != nil {
		return 0, fmt.Errorf("failed to unmarshal balance: %w", err)
	}
	return balance.Beans, nil
}

// DebitAndRecord debits interaction.CostPaid from the actor and appends the
// interaction as one transaction: neither write lands unless both do. The
// balance guard failing surfaces as ErrInsufficientFunds with no state
// applied; a missing balance row fails the same guard and reads as zero.
func (ls *LedgerService) DebitAndRecord(ctx context.Context, interaction models.Interaction) error {
	if interaction.CostPaid <= 0 {
		return errors.New("debit requires a positive cost")
	}

	item, err := attributevalue.MarshalMap(interaction)
	if err != nil {
		return fmt.Errorf("failed to marshal interaction: %w", err)
	}

	balancesTable := models.BalancesTable
	interactionsTable := models.InteractionsTable
	updateExpression := "SET beans = beans - :cost"
	conditionExpression := "beans >= :cost"

	writes := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: &balancesTable,
				Key: map[string]types.AttributeValue{
					"userId": &types.AttributeValueMemberS{Value: interaction.ActorID},
				},
				UpdateExpression:    &updateExpression,
				ConditionExpression: &conditionExpression,
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":cost": &types.AttributeValueMemberN{Value: strconv.Itoa(interaction.CostPaid)},
				},
			},
		},
		{
			Put: &types.Put{
				TableName: &interactionsTable,
				Item:      item,
			},
		},
	}

	err = ls.Dynamo.TransactWriteItems(ctx, writes)
	if errors.Is(err, ErrConditionFailed) {
		log.Printf("⚠️ Debit refused for %s: fewer than %d beans", interaction.ActorID, interaction.CostPaid)
		return ErrInsufficientFunds
	}
	if err != nil {
		return fmt.Errorf("debit and record failed: %w", err)
	}

	log.Printf("✅ Debited %d beans from %s for %s on %s", interaction.CostPaid, interaction.ActorID, interaction.ActionType, interaction.TargetID)
	return nil
}
