package Trees

import "github.com/pkg/errors"

var (
	// ErrNilComparator is raised by the constructors when no comparator is given.
	ErrNilComparator = errors.New("nil comparator")
	// ErrNilKey is returned when a nil interface key is used.
	ErrNilKey = errors.New("nil key")
	// ErrDuplicateKey is returned by Add and InsertAt when the key is already present.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrKeyNotFound is returned by Lookup and Update when the key is absent.
	ErrKeyNotFound = errors.New("key not found")
	// ErrWrongKey is returned by InsertAt when the key doesn't belong at the location.
	ErrWrongKey = errors.New("key doesn't match location")
	// ErrStaleLocation is returned by InsertAt when the tree changed structurally after Find.
	ErrStaleLocation = errors.New("stale location")
	// ErrModified is reported by an Enumerator whose tree changed structurally during iteration.
	ErrModified = errors.New("tree modified during enumeration")
	// ErrCapacity is raised when the index type S can't address another node.
	ErrCapacity = errors.New("index type exhausted")
)

// isNil reports whether k is a nil interface value. Always false for non-interface key types.
func isNil[K any](k K) bool {
	return any(k) == nil
}
