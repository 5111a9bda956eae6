package models

// StagingEntry is the latest copy of one file accepted into the staging area.
// Identity is the base name of the source path: staging two paths with the
// same base name keeps only the most recent one.
type StagingEntry struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// EntryDigest pairs a staged name with the sha256 of its content
type EntryDigest struct {
	Name        string
	ContentHash string
}
