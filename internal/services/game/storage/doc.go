// Package storage defines persistence interfaces for the level-up service.
//
// It covers the Daggerheart content catalog (domains, domain cards, classes,
// subclasses) and per-character progression. Implementations (e.g., SQLite)
// live in subpackages.
//
// Common error types:
//   - ErrNotFound: requested record is missing
//   - ErrProgressionExists: a progression was created twice
//   - ErrVersionConflict: an update raced with another writer
//   - ErrIntegrity: a stored progression was altered outside the store
package storage
