package store

import (
	"bufio"
	"fmt"
	"strings"
	"time"
)

// Names of the record files written next to the captured entries in a
// commit directory. Staged entries may not use them.
const (
	MetadataFile = "metadata"
	ParentFile   = "parent"
)

// IsReservedName reports whether name collides with a commit record file.
func IsReservedName(name string) bool {
	return name == MetadataFile || name == ParentFile
}

// commitMetadata is the human-readable metadata record of a commit.
type commitMetadata struct {
	Author    string
	Message   string
	Timestamp time.Time
}

var metadataEscaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`)

// encode renders one field per line. Backslashes and line breaks inside
// values are escaped so each field stays on its own line.
func (m *commitMetadata) encode() []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "Author: %s\n", metadataEscaper.Replace(m.Author))
	fmt.Fprintf(&b, "Message: %s\n", metadataEscaper.Replace(m.Message))
	fmt.Fprintf(&b, "Timestamp: %s\n", m.Timestamp.Format(time.RFC3339Nano))
	return []byte(b.String())
}

func decodeMetadata(data []byte) (*commitMetadata, error) {
	m := &commitMetadata{}
	seen := map[string]bool{}

	sc := bufio.NewScanner(strings.NewReader(string(data)))
	sc.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			// hand-edited records may drop the trailing space of an empty field
			key, ok = strings.CutSuffix(line, ":")
			if !ok {
				return nil, fmt.Errorf("malformed metadata line %q", line)
			}
		}

		switch key {
		case "Author":
			m.Author = unescapeMetadata(value)
		case "Message":
			m.Message = unescapeMetadata(value)
		case "Timestamp":
			ts := parseTimestamp(value)
			if ts.IsZero() {
				return nil, fmt.Errorf("invalid timestamp %q", value)
			}
			m.Timestamp = ts
		default:
			continue
		}
		seen[key] = true
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	for _, k := range []string{"Author", "Message", "Timestamp"} {
		if !seen[k] {
			return nil, fmt.Errorf("metadata missing %s", k)
		}
	}
	return m, nil
}

func unescapeMetadata(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
