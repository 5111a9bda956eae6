package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"
)

// GenerateCommitID generates a content-addressable commit ID.
// The ID includes a Merkle hash of staged entries so that two commits with
// identical metadata but different content produce different IDs.
func GenerateCommitID(message, author string, timestamp time.Time, parentID string, entries []EntryDigest) string {
	entriesHash := ComputeEntriesHash(entries)
	data := fmt.Sprintf("%s|%s|%s|%s|%s", message, author, timestamp.Format(time.RFC3339Nano), parentID, entriesHash)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

// ComputeEntriesHash computes a Merkle hash over a set of staged entries.
// Each entry is hashed individually, the hashes are sorted, and then
// hashed together to produce a deterministic digest.
func ComputeEntriesHash(entries []EntryDigest) string {
	if len(entries) == 0 {
		return ""
	}

	hashes := make([]string, len(entries))
	for i, e := range entries {
		h := sha256.Sum256([]byte(e.Name + "|" + e.ContentHash))
		hashes[i] = hex.EncodeToString(h[:])
	}

	sort.Strings(hashes)

	combined := strings.Join(hashes, "")
	final := sha256.Sum256([]byte(combined))
	return hex.EncodeToString(final[:])
}
