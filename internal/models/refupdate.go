package models

import "time"

// RefAction identifies what moved a ref
type RefAction string

const (
	RefActionInit   RefAction = "init"
	RefActionCommit RefAction = "commit"
	RefActionBranch RefAction = "branch"
	RefActionSwitch RefAction = "switch"
)

// RefUpdate is one reflog row. For switch rows Ref is "HEAD" and the
// old/new values are branch names rather than commit IDs.
type RefUpdate struct {
	ID        int64     `json:"id"`
	Ref       string    `json:"ref"`
	OldValue  string    `json:"old_value"`
	NewValue  string    `json:"new_value"`
	Action    RefAction `json:"action"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
