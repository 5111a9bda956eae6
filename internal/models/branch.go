package models

// Branch represents a named reference to a commit.
// An empty CommitID means the branch has no commits yet.
type Branch struct {
	Name     string `json:"name"`
	CommitID string `json:"commit_id"`
}

// IsUnborn returns true if no commit has been recorded on the branch
func (b *Branch) IsUnborn() bool {
	return b.CommitID == ""
}
