package models

// ✅ Action Types (pass, like, superlike, unlock, dm)
const (
	ActionPass      = "pass"
	ActionLike      = "like"
	ActionSuperlike = "superlike"
	ActionUnlock    = "unlock"
	ActionDM        = "dm"
)

// QualifyingActions are the only action types counted toward mutual-match
// detection. Unlock and dm are monetized signals, not courtship signals.
var QualifyingActions = []string{ActionLike, ActionSuperlike}

// TerminalActions end a decision cycle for a target. A later chargeable
// action against the same target must not charge again.
var TerminalActions = []string{ActionPass, ActionLike, ActionSuperlike}

// ✅ Resolution Statuses (terminal states of one decision cycle)
const (
	StatusSkipped   = "skipped"
	StatusRefused   = "refused"
	StatusCharged   = "charged"
	StatusMatched   = "matched"
	StatusDuplicate = "duplicate"
)

// KnownAction reports whether actionType is one the resolver accepts.
func KnownAction(actionType string) bool {
	switch actionType {
	case ActionPass, ActionLike, ActionSuperlike, ActionUnlock, ActionDM:
		return true
	}
	return false
}

// IsQualifying reports whether actionType counts toward match detection.
func IsQualifying(actionType string) bool {
	return actionType == ActionLike || actionType == ActionSuperlike
}
