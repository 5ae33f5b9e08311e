package models

// Interaction is the append-only record of what an actor did to a target.
// Records are created once and never mutated or deleted.
type Interaction struct {
	TargetID      string `dynamodbav:"targetId" json:"targetId"`           // ✅ Partition Key
	InteractionID string `dynamodbav:"interactionId" json:"interactionId"` // ✅ Sort Key
	ActorID       string `dynamodbav:"actorId" json:"actorId"`             // ✅ Used in GSI
	ActionType    string `dynamodbav:"actionType" json:"actionType"`       // pass, like, superlike, unlock, dm
	CostPaid      int    `dynamodbav:"costPaid" json:"costPaid"`
	Note          string `dynamodbav:"note,omitempty" json:"note,omitempty"` // dm only
	CreatedAt     string `dynamodbav:"createdAt" json:"createdAt"`
}

// ✅ Define table name for interactions
const InteractionsTable = "Interactions"

// ✅ Define GSI Name (Used in querying an actor's own history)
const ActorIndex = "actorId-index"
