// Package sync reconciles the relational store with the metadata
// documents kept in bucket storage.
//
// Three operations are exposed, over HTTP and through the CLI:
//
//   - SyncFromR2 reads every metadata document and upserts a database
//     row per hash. Malformed or orphaned documents are skipped and
//     counted, never fatal; only an unreachable storage backend aborts
//     the run.
//   - RebuildMetadata regenerates every document from the database,
//     writing all performer documents before any content document.
//   - Status compares the hash sets on both sides and reports the
//     exact drift in each direction.
//
// Mutating runs are serialized per process; a second concurrent call
// receives a conflict error instead of queueing.
package sync
