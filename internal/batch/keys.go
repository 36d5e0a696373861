// Package batch splits key lists into bounded chunks for IN-style predicates
// and bulk delete calls.
package batch

import (
	"errors"
	"fmt"
)

var ErrInvalidSize = errors.New("batch size must be positive")

// Keys is a non-empty-string key set whose length was checked against a cap
// when it was built. Stores accept Keys instead of raw slices so that no call
// can exceed the predicate size it was validated for.
type Keys struct {
	values []string
	limit  int
}

// NewKeys validates values against limit. Empty strings are dropped.
func NewKeys(values []string, limit int) (Keys, error) {
	if limit <= 0 {
		return Keys{}, ErrInvalidSize
	}
	cleaned := compact(values)
	if len(cleaned) > limit {
		return Keys{}, fmt.Errorf("batch of %d keys exceeds limit %d", len(cleaned), limit)
	}
	return Keys{values: cleaned, limit: limit}, nil
}

func (k Keys) Values() []string {
	out := make([]string, len(k.values))
	copy(out, k.values)
	return out
}

func (k Keys) Len() int {
	return len(k.values)
}

func (k Keys) Limit() int {
	return k.limit
}

// Split chunks values into consecutive batches of at most size keys,
// preserving order. Empty strings are dropped before chunking.
func Split(values []string, size int) ([]Keys, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	cleaned := compact(values)

	batches := make([]Keys, 0, (len(cleaned)+size-1)/size)
	for start := 0; start < len(cleaned); start += size {
		end := start + size
		if end > len(cleaned) {
			end = len(cleaned)
		}
		chunk := make([]string, end-start)
		copy(chunk, cleaned[start:end])
		batches = append(batches, Keys{values: chunk, limit: size})
	}
	return batches, nil
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
