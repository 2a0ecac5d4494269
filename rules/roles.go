package rules

import "strings"

// typed is a generic constraint for any model type with a TypeName accessor.
type typed interface {
	TypeName() string
}

// containsType returns true if any item's TypeName matches t (case-insensitive).
func containsType[T typed](items []T, t string) bool {
	for _, item := range items {
		if strings.EqualFold(item.TypeName(), t) {
			return true
		}
	}
	return false
}
