package models

// Balance is a user's bean count. Never negative; the ledger service is the
// only writer.
type Balance struct {
	UserID string `dynamodbav:"userId" json:"userId"`
	Beans  int    `dynamodbav:"beans" json:"beans"`
}

// BalancesTable is the DynamoDB table name for bean balances
const BalancesTable = "Balances"
