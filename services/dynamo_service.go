package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrNotFound is returned when a requested item does not exist.
var ErrNotFound = errors.New("item not found")

// ErrConditionFailed is returned when a conditional write loses to an
// existing item or an unmet guard expression.
var ErrConditionFailed = errors.New("conditional write failed")

type DynamoService struct {
	Client *dynamodb.Client
}

// InitializeDynamoDBClient initializes the DynamoDB client
func InitializeDynamoDBClient(region string) *dynamodb.Client {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

// PutItem writes an item, overwriting any existing item with the same key.
func (ds *DynamoService) PutItem(ctx context.Context, tableName string, item interface{}) error {
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = ds.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &tableName,
		Item:      marshaled,
	})
	if err != nil {
		return fmt.Errorf("failed to put item in table '%s': %w", tableName, err)
	}
	return nil
}

// PutItemIfAbsent writes an item only if no item with the same value for
// keyAttr exists. Returns ErrConditionFailed when the key is already taken.
func (ds *DynamoService) PutItemIfAbsent(ctx context.Context, tableName string, item interface{}, keyAttr string) error {
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	condition := fmt.Sprintf("attribute_not_exists(%s)", keyAttr)
	_, err = ds.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &tableName,
		Item:                marshaled,
		ConditionExpression: &condition,
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return ErrConditionFailed
		}
		return fmt.Errorf("failed to put item in table '%s': %w", tableName, err)
	}
	return nil
}

// GetItem retrieves an item from DynamoDB
func (ds *DynamoService) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	output, err := ds.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &tableName,
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item from table '%s': %w", tableName, err)
	}

	if output.Item == nil {
		return nil, ErrNotFound
	}
	return output.Item, nil
}

// TransactWriteItems executes a set of writes as a single transaction.
// Either every write lands or none does. A cancellation caused by an unmet
// condition maps to ErrConditionFailed.
func (ds *DynamoService) TransactWriteItems(ctx context.Context, items []types.TransactWriteItem) error {
	_, err := ds.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			for _, reason := range canceled.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return ErrConditionFailed
				}
			}
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// fetchPage returns one page of items plus the start key of the next page,
// nil when the result set is exhausted.
type fetchPage func(startKey map[string]types.AttributeValue) ([]map[string]types.AttributeValue, map[string]types.AttributeValue, error)

// queryAllPages drains a paginated query by following each page's
// LastEvaluatedKey until none is returned.
func queryAllPages(fetch fetchPage) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		page, nextKey, err := fetch(startKey)
		if err != nil {
			return nil, err
		}
		items = append(items, page...)
		if len(nextKey) == 0 {
			return items, nil
		}
		startKey = nextKey
	}
}

// QueryAllItemsWithIndex queries a Global Secondary Index (GSI) and follows
// LastEvaluatedKey until the result set is exhausted. Query's Limit only
// caps items evaluated per page, so a single-page read can silently drop
// matches once a partition outgrows one page.
func (ds *DynamoService) QueryAllItemsWithIndex(
	ctx context.Context,
	tableName string,
	indexName string,
	keyConditionExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	pageLimit int32,
) ([]map[string]types.AttributeValue, error) {
	return queryAllPages(func(startKey map[string]types.AttributeValue) ([]map[string]types.AttributeValue, map[string]types.AttributeValue, error) {
		output, err := ds.Client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 &tableName,
			IndexName:                 &indexName,
			KeyConditionExpression:    &keyConditionExpression,
			ExpressionAttributeValues: expressionAttributeValues,
			Limit:                     &pageLimit,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to query GSI '%s': %w", indexName, err)
		}
		return output.Items, output.LastEvaluatedKey, nil
	})
}

// ScanWithFilter scans a table, keeping items whose attributes equal the
// given matchFields and that pass the filter callback.
func (ds *DynamoService) ScanWithFilter(
	ctx context.Context,
	tableName string,
	filterFunc func(map[string]types.AttributeValue) bool,
	matchFields map[string]string,
	result interface{},
) error {
	var filterExpressions []string
	expressionAttributeNames := map[string]string{}
	expressionAttributeValues := map[string]types.AttributeValue{}

	for key, value := range matchFields {
		expressionAttributeNames["#"+key] = key
		expressionAttributeValues[":"+key] = &types.AttributeValueMemberS{Value: value}
		filterExpressions = append(filterExpressions, fmt.Sprintf("#%s = :%s", key, key))
	}

	scanInput := &dynamodb.ScanInput{TableName: &tableName}
	if len(filterExpressions) > 0 {
		filterExpression := strings.Join(filterExpressions, " AND ")
		scanInput.FilterExpression = &filterExpression
		scanInput.ExpressionAttributeNames = expressionAttributeNames
		scanInput.ExpressionAttributeValues = expressionAttributeValues
	}

	output, err := ds.Client.Scan(ctx, scanInput)
	if err != nil {
		return fmt.Errorf("failed to scan table '%s': %w", tableName, err)
	}

	var filteredItems []map[string]types.AttributeValue
	for _, item := range output.Items {
		if filterFunc == nil || filterFunc(item) {
			filteredItems = append(filteredItems, item)
		}
	}

	if err := attributevalue.UnmarshalListOfMaps(filteredItems, result); err != nil {
		return fmt.Errorf("failed to unmarshal scan result: %w", err)
	}
	return nil
}
