package slottree

import (
	"cmp"

	"github.com/cockroachdb/errors"
)

// Config configures a tree.
type Config[K any] struct {
	// Compare orders keys. It returns a negative number if a < b, a positive
	// number if a > b and 0 if neither is less than the other.
	Compare func(a, b K) int
	// SizeHint pre-allocates arena slots for this many nodes. Optional.
	SizeHint int
}

// OrderedConfig returns a configuration ordering keys with cmp.Compare.
func OrderedConfig[K cmp.Ordered]() Config[K] {
	return Config[K]{Compare: cmp.Compare[K]}
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return errors.Wrap(ErrInvalidConfig, "compare function is required")
	}
	if cfg.SizeHint < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative size hint %d", cfg.SizeHint)
	}
	return nil
}

// Probe locates a query relative to a stored key. It returns a negative
// number if the query orders before key, a positive number if it orders after
// key, and 0 if the query matches key.
type Probe[K any] func(key K) int

// ProbeOf creates a probe for a query of a type other than the key type,
// e.g. a byte slice used to search a tree keyed by strings.
func ProbeOf[Q, K any](query Q, compare func(Q, K) int) Probe[K] {
	return func(key K) int {
		return compare(query, key)
	}
}
