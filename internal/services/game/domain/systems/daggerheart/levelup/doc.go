// Package levelup implements the Daggerheart level-up rules.
//
// A level-up moves a character one level forward. Reaching the first level
// of a tier (2, 5 or 8) grants an automatic experience and domain card; every
// level-up spends a fixed two-point budget on upgrade types whose per-tier
// caps and exclusions are derived from the character's recorded history.
//
// Everything here is a pure function of its inputs. Callers pass a full
// snapshot (character, history, catalog) and receive new values back; nothing
// is mutated in place and nothing is cached between calls.
package levelup
