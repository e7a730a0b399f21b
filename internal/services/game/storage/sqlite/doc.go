// Package sqlite implements the level-up persistence contracts: the
// Daggerheart content catalog and per-character progression.
//
// Each purpose lives in its own database file with its own embedded
// migrations. Progression writes use a compare-and-swap on version, and when
// a keyring is configured every row carries a signed content hash that is
// verified on read.
package sqlite
