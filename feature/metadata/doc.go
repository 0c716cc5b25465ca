// Package metadata owns the stable content-hash scheme and the metadata
// documents stored next to media files in bucket storage.
//
// Every performer and content item carries a derived hash independent of
// its database primary key. The hash names the entity's storage prefix
// (performers/{hash}/, content/{hash}/) so the bucket layout survives a
// database rebuild, and the metadata.json document inside each prefix is
// the recovery source of truth the sync engine reconciles from.
//
// Documents are validated on read; a malformed document disqualifies one
// entity, never a whole enumeration.
package metadata
