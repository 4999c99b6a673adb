package collection

// Join helpers: pure derivations over already-fetched snapshots. Nothing
// here is cached or incrementally maintained; callers recompute per request.

// CountByKey maps each key to the number of items carrying it.
func CountByKey[T any, K comparable](items []T, key func(T) K) map[K]int {
	counts := make(map[K]int, len(items))
	for _, it := range items {
		counts[key(it)]++
	}
	return counts
}

// FilterByKey returns the items whose key equals want, preserving order.
func FilterByKey[T any, K comparable](items []T, key func(T) K, want K) []T {
	out := make([]T, 0)
	for _, it := range items {
		if key(it) == want {
			out = append(out, it)
		}
	}
	return out
}

// Group is one bucket produced by GroupByKey.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// GroupByKey buckets items in a single pass, preserving the first-seen
// order of groups and the input order within each group.
func GroupByKey[T any, K comparable](items []T, key func(T) K) []Group[K, T] {
	index := make(map[K]int, len(items))
	groups := make([]Group[K, T], 0)
	for _, it := range items {
		k := key(it)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}
