// Package cells provides the position-keyed maps that back a zgrid Grid.
//
// What:
//
//   - Ordered is a map from coord.Pos to a value that remembers insertion
//     order, so iteration is reproducible and matches the order cells were
//     written (not their spatial order).
//   - Lazy wraps a function of position. Reading a missing key calls the
//     function once, stores the result and returns it; later reads never
//     recompute. Only stored keys count towards Len and iteration.
//
// Concurrency:
//
//	Neither type synchronises access. Lazy fills its cache with a plain
//	check-then-insert, so concurrent first reads of one key may call the
//	function twice and race on the map. Confine each map to one goroutine.
//
// Errors:
//
//   - ErrNotFound: Lookup of a key that is not stored (Ordered only).
//   - ErrUnsupportedKey: LookupAny given something that is not a position.
//   - ErrCompute: the value function of a Lazy map failed; nothing is stored.
package cells
