// Package integrity provides hash and signing helpers that make stored
// progression records tamper-evident.
//
// Each saved progression carries a deterministic content hash over its
// character id, level, version and JSON payloads. When a keyring is
// configured the hash is signed with an HMAC key derived per character, so a
// record edited outside the service fails verification on read.
package integrity
