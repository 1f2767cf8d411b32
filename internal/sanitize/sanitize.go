// Package sanitize prunes empty leaves from nested document trees before
// rendering, so both document formats see the same set of surviving
// fields and never re-check emptiness themselves.
package sanitize

import "strings"

// Sanitize recursively removes null and blank-string leaves, then empty
// lists and empty maps, from the tree. The result is always a map,
// possibly empty. Surviving siblings keep their original order and the
// operation is idempotent.
func Sanitize(v Value) *Map {
	pruned, keep := prune(v)
	if !keep || pruned.Kind() != KindMap {
		return NewMap()
	}
	return pruned.MapVal()
}

func prune(v Value) (Value, bool) {
	switch v.Kind() {
	case KindNull:
		return v, false
	case KindBool, KindNumber:
		return v, true
	case KindString:
		if strings.TrimSpace(v.StringVal()) == "" {
			return v, false
		}
		return v, true
	case KindList:
		var survivors []Value
		for _, item := range v.ListVal() {
			if cleaned, keep := prune(item); keep {
				survivors = append(survivors, cleaned)
			}
		}
		if len(survivors) == 0 {
			return v, false
		}
		return List(survivors...), true
	case KindMap:
		cleaned := NewMap()
		for _, key := range v.MapVal().keys {
			if val, keep := prune(v.MapVal().vals[key]); keep {
				cleaned.Set(key, val)
			}
		}
		if cleaned.Len() == 0 {
			return v, false
		}
		return MapOf(cleaned), true
	}
	return v, false
}
