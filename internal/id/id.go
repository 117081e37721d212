// Package id generates identifiers for import batches and the transactions
// stored from them.
package id

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const batchPrefix = "imp_"

// NewBatchID returns a fresh batch ID like "imp_1b4e28ba2fa1".
func NewBatchID() string {
	u := uuid.New()
	return batchPrefix + strings.ReplaceAll(u.String(), "-", "")[:12]
}

// FormatRef returns a transaction reference like "imp_1b4e28ba2fa1-0007".
func FormatRef(batchID string, seq int) string {
	return fmt.Sprintf("%s-%04d", batchID, seq)
}

// ParseRef splits a transaction reference into batch ID and sequence.
func ParseRef(ref string) (batchID string, seq int, err error) {
	i := strings.LastIndexByte(ref, '-')
	if i <= 0 || !strings.HasPrefix(ref, batchPrefix) {
		return "", 0, fmt.Errorf("invalid transaction reference: %q", ref)
	}
	seq, err = strconv.Atoi(ref[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid sequence in reference %q: %w", ref, err)
	}
	return ref[:i], seq, nil
}
