// Package cache implements the bounded in-memory agent-memory cache that
// sits in front of the durable record store.
//
// The engine combines:
//   - LRU eviction: a map gives O(1) key lookup and a doubly-linked list
//     maintains recency order (front = most recently used)
//   - Lazy TTL expiration: expired entries are removed when a lookup or an
//     explicit CleanupExpired sweep observes them, never by an internal
//     timer (periodic reclamation belongs to an external scheduler, see
//     the maintenance package)
//   - Hit/miss accounting updated atomically with each lookup
//
// Keys are structural triples (agent, memory type, memory key), so two
// distinct logical keys can never collide through separator characters.
//
// All operations serialize on a single non-reentrant mutex; Get counts as
// a write because it promotes recency and updates counters. The cache
// never calls the record store - callers populate it cache-aside.
package cache
