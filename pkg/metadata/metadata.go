// Package metadata stamps generated run reports with a trailer carrying the
// run id, generation time and a content hash, and verifies previously
// written reports against that hash.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// TagStart is the start of the stamp block.
	TagStart = "<!-- REPORT_STAMP_START"
	// TagEnd is the end of the stamp block.
	TagEnd = "REPORT_STAMP_END -->"
)

// Stamp verification errors.
var (
	ErrNoStampBlock = errors.New("no stamp block found")
	ErrNoHashFound  = errors.New("no hash found in stamp")
	ErrHashMismatch = errors.New("hash mismatch")
)

// Stamp identifies one pipeline run's report.
type Stamp struct {
	RunID       string
	GeneratedAt time.Time
	Hash        string
}

// stampRegex matches the entire stamp block including tags.
var stampRegex = regexp.MustCompile(`(?s)<!--\s*REPORT_STAMP_START\s*\n(.*?)\n\s*REPORT_STAMP_END\s*-->`)

// Extract removes the stamp block from content, returning the parsed stamp
// (nil when absent) and the cleaned content. The cleaned content is what
// gets hashed.
func Extract(content string) (*Stamp, string) {
	match := stampRegex.FindStringSubmatch(content)
	clean := stampRegex.ReplaceAllString(content, "")
	clean = strings.TrimRight(clean, "\n")

	if len(match) < 2 {
		return nil, clean
	}

	stamp := &Stamp{}

	for line := range strings.SplitSeq(match[1], "\n") {
		parts := strings.SplitN(strings.TrimSpace(line), ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])

		switch key {
		case "RUN_ID":
			stamp.RunID = val
		case "GENERATED_AT":
			if t, err := time.Parse(time.RFC3339, val); err == nil {
				stamp.GeneratedAt = t
			}
		case "HASH":
			stamp.Hash = val
		}
	}

	return stamp, clean
}

// CalculateHash computes the SHA-256 hash of the content, excluding any
// stamp block already present.
func CalculateHash(content string) string {
	_, clean := Extract(content)
	hash := sha256.Sum256([]byte(clean))

	return hex.EncodeToString(hash[:])
}

// Sign appends a fresh stamp block for the given run id, replacing any
// existing block.
func Sign(content, runID string) string {
	_, clean := Extract(content)
	hash := CalculateHash(clean)
	now := time.Now().UTC().Format(time.RFC3339)

	block := fmt.Sprintf("\n\n%s\nRUN_ID: %s\nGENERATED_AT: %s\nHASH: %s\n%s",
		TagStart, runID, now, hash, TagEnd)

	return clean + block
}

// Verify checks that the content matches the hash in its stamp.
func Verify(content string) (*Stamp, error) {
	stamp, clean := Extract(content)
	if stamp == nil {
		return nil, ErrNoStampBlock
	}

	if stamp.Hash == "" {
		return nil, ErrNoHashFound
	}

	calculated := CalculateHash(clean)
	if calculated != stamp.Hash {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, stamp.Hash, calculated)
	}

	return stamp, nil
}
