// Package catalog provides in-memory repositories over the app's seeded
// datasets. Repositories keep the interface-plus-default-impl shape so a
// backing store can be swapped in without touching the services.
package catalog

import "errors"

// ErrNotFound is returned when an id has no match in a dataset.
var ErrNotFound = errors.New("catalog: entry not found")
