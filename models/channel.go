package models

// Channel records that two users may now communicate. At most one channel
// exists per unordered pair; creation is keyed on the canonical pair key.
type Channel struct {
	PairKey      string   `dynamodbav:"pairKey" json:"pairKey"` // ✅ Partition Key
	ChannelID    string   `dynamodbav:"channelId" json:"channelId"`
	Participants []string `dynamodbav:"participants" json:"participants"`
	CreatedAt    string   `dynamodbav:"createdAt" json:"createdAt"`
}

// ChannelsTable is the DynamoDB table name for communication channels
const ChannelsTable = "Channels"

// ChannelPairKey builds the canonical, order-independent key for two user
// ids. Both sides of a mutual match derive the same key.
func ChannelPairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "#" + b
}
