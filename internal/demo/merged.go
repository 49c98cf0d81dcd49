// Package demo holds the in-memory stores backing demo mode. Stores merge a
// seeded baseline with session additions; nothing here touches the network.
package demo

import "sort"

// mergedCollection merges a replaceable baseline with accumulated additions.
// Re-seeding is idempotent: the baseline is replaced wholesale and any
// addition whose id collides with a baseline item is dropped (baseline wins).
type mergedCollection[T any] struct {
	baseline  []T
	additions []T
	id        func(T) string
	clone     func(T) T
	less      func(a, b T) bool
}

func newMergedCollection[T any](id func(T) string, clone func(T) T, less func(a, b T) bool) *mergedCollection[T] {
	return &mergedCollection[T]{id: id, clone: clone, less: less}
}

func (c *mergedCollection[T]) seed(baseline []T) {
	clones := make([]T, len(baseline))
	ids := make(map[string]struct{}, len(baseline))
	for i, item := range baseline {
		clones[i] = c.clone(item)
		ids[c.id(item)] = struct{}{}
	}
	c.baseline = clones

	kept := c.additions[:0]
	for _, item := range c.additions {
		if _, taken := ids[c.id(item)]; !taken {
			kept = append(kept, item)
		}
	}
	c.additions = kept
}

func (c *mergedCollection[T]) add(item T) {
	c.additions = append([]T{c.clone(item)}, c.additions...)
}

// items returns sorted clones of baseline plus additions.
func (c *mergedCollection[T]) items() []T {
	merged := make([]T, 0, len(c.baseline)+len(c.additions))
	for _, item := range c.baseline {
		merged = append(merged, c.clone(item))
	}
	for _, item := range c.additions {
		merged = append(merged, c.clone(item))
	}
	sort.SliceStable(merged, func(i, j int) bool { return c.less(merged[i], merged[j]) })
	return merged
}
