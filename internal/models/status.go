package models

// Status represents the current HEAD position and pending changes
type Status struct {
	BranchName string   // Branch named by HEAD
	CommitID   string   // Head commit of that branch, empty if unborn
	Staged     []string // Staged entry names, sorted
}
