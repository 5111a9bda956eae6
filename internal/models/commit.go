// Package models defines the core data structures used throughout mini
// including commits, branches, staging entries and ref updates.
package models

import "time"

// Commit represents an immutable snapshot of the staging area
type Commit struct {
	ID        string    `json:"id"`
	ParentID  string    `json:"parent_id,omitempty"`
	Author    string    `json:"author"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Files     []string  `json:"files"` // sorted names of captured entries
}

// ShortID returns a shortened commit ID (first 7 characters)
func (c *Commit) ShortID() string {
	if len(c.ID) > 7 {
		return c.ID[:7]
	}
	return c.ID
}

// IsRoot returns true if the commit has no parent
func (c *Commit) IsRoot() bool {
	return c.ParentID == ""
}
