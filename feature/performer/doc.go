// Package performer exposes performer reads for clients and the admin
// write path.
//
// Reads go through the shared TTL cache under the keys
// performers_all_{page}_{limit} and performer_{id}. Writes do not
// invalidate those keys; clients may see a performer up to one TTL
// after it changed.
//
// Deleting a performer removes its storage objects best effort before
// the rows, so a flaky bucket can leave orphaned objects but never an
// inconsistent database. Orphans are picked up by the next sync status
// check.
package performer
