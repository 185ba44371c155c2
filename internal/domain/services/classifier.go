package services

import (
	"strings"

	"consent-theater/internal/taxonomy"
)

// PermissionClassifier maps raw OS permission strings onto the fixed
// dangerous-permission taxonomy.
type PermissionClassifier struct {
	prefixes  []string
	dangerous map[string]bool
}

// NewPermissionClassifier creates a classifier backed by the bundled tables.
func NewPermissionClassifier() *PermissionClassifier {
	return NewPermissionClassifierWithTables(taxonomy.PermissionPrefixes, taxonomy.DangerousPermissions)
}

// NewPermissionClassifierWithTables creates a classifier with substituted
// tables, used by tests.
func NewPermissionClassifierWithTables(prefixes, dangerous []string) *PermissionClassifier {
	set := make(map[string]bool, len(dangerous))
	for _, p := range dangerous {
		set[p] = true
	}
	return &PermissionClassifier{
		prefixes:  prefixes,
		dangerous: set,
	}
}

// StripPrefix removes the first matching namespace prefix from a raw
// permission identifier. Prefix matching is case-insensitive; stripping an
// already-stripped name is a no-op.
func (c *PermissionClassifier) StripPrefix(permission string) string {
	lower := strings.ToLower(permission)
	for _, prefix := range c.prefixes {
		if strings.HasPrefix(lower, strings.ToLower(prefix)) {
			return permission[len(prefix):]
		}
	}
	return permission
}

// Classify returns the canonical short name of a permission and whether it
// belongs to the dangerous taxonomy. Idempotent over StripPrefix.
func (c *PermissionClassifier) Classify(permission string) (string, bool) {
	short := c.StripPrefix(permission)
	return short, c.dangerous[short]
}

// FilterDangerous returns the prefix-stripped dangerous subset of a raw
// permission list, deduplicated, insertion order preserved.
func (c *PermissionClassifier) FilterDangerous(permissions []string) []string {
	out := make([]string, 0)
	seen := make(map[string]bool)
	for _, perm := range permissions {
		short, ok := c.Classify(perm)
		if ok && !seen[short] {
			seen[short] = true
			out = append(out, short)
		}
	}
	return out
}
