package services

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interactionPage(ids ...string) []map[string]types.AttributeValue {
	var items []map[string]types.AttributeValue
	for _, id := range ids {
		items = append(items, map[string]types.AttributeValue{
			"interactionId": &types.AttributeValueMemberS{Value: id},
		})
	}
	return items
}

func TestQueryAllPages_FollowsLastEvaluatedKey(t *testing.T) {
	pages := []struct {
		items []map[string]types.AttributeValue
		next  map[string]types.AttributeValue
	}{
		{interactionPage("i1", "i2"), map[string]types.AttributeValue{"interactionId": &types.AttributeValueMemberS{Value: "i2"}}},
		{interactionPage("i3", "i4"), map[string]types.AttributeValue{"interactionId": &types.AttributeValueMemberS{Value: "i4"}}},
		{interactionPage("i5"), nil},
	}

	calls := 0
	var startKeys []map[string]types.AttributeValue
	items, err := queryAllPages(func(startKey map[string]types.AttributeValue) ([]map[string]types.AttributeValue, map[string]types.AttributeValue, error) {
		startKeys = append(startKeys, startKey)
		p := pages[calls]
		calls++
		return p.items, p.next, nil
	})
	require.NoError(t, err)

	// Every page is read, so a record sitting past the first page is seen.
	require.Len(t, items, 5)
	last, ok := items[4]["interactionId"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "i5", last.Value)

	// Each page resumed from the previous page's LastEvaluatedKey.
	require.Equal(t, 3, calls)
	assert.Nil(t, startKeys[0])
	assert.Equal(t, pages[0].next, startKeys[1])
	assert.Equal(t, pages[1].next, startKeys[2])
}

func TestQueryAllPages_SinglePage(t *testing.T) {
	calls := 0
	items, err := queryAllPages(func(startKey map[string]types.AttributeValue) ([]map[string]types.AttributeValue, map[string]types.AttributeValue, error) {
		calls++
		return interactionPage("only"), nil, nil
	})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, calls)
}

func TestQueryAllPages_PropagatesError(t *testing.T) {
	throttled := errors.New("throttled")
	_, err := queryAllPages(func(startKey map[string]types.AttributeValue) ([]map[string]types.AttributeValue, map[string]types.AttributeValue, error) {
		return nil, nil, throttled
	})
	assert.ErrorIs(t, err, throttled)
}
