package store

import "errors"

// ErrNotFound is returned by mutating operations when the referenced
// article or comment does not exist. Lookup operations return nil instead —
// absence is a normal outcome for a find, a failure for an update or delete.
var ErrNotFound = errors.New("store: record not found")
