// Package entitlement holds the set semantics of course ownership.
package entitlement

import "github.com/google/uuid"

// Merge appends each granted id that is not already owned, keeping first-seen order.
// The store performs the same operation atomically; this is the reference behavior.
func Merge(owned, granted []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(owned)+len(granted))
	out := make([]uuid.UUID, 0, len(owned)+len(granted))
	for _, id := range owned {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	for _, id := range granted {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Dedupe drops repeated and nil ids so a grant never carries duplicates to the store.
func Dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
