// Package drawset provides Set, a container with O(1) insertion, removal,
// membership and uniform random draw.
//
// Layout: a dense slice of items plus a map from item to slice position.
// Remove swaps the victim with the last slot and fixes the moved item's
// index, so iteration order is not preserved. Draw picks rng.Intn(Len())
// and is therefore exactly uniform over the current contents.
//
// A Set is not safe for concurrent use; it is owned by a single rewiring run.
package drawset
