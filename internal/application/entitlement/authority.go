package entitlement

import (
	"sort"
)

// Authority name prefixes
const (
	RolePrefix   = "ROLE_"
	ModulePrefix = "MODULE_"
)

// AuthorityAdmin is granted to holders of the administrator role
const AuthorityAdmin = RolePrefix + "ADMIN"

// AuthoritySet is the set of permission tokens attached to a request's
// security context. Duplicates collapse; ordering is not significant.
type AuthoritySet map[string]struct{}

// NewAuthoritySet creates a set from the given authority names
func NewAuthoritySet(names ...string) AuthoritySet {
	s := make(AuthoritySet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts an authority into the set
func (s AuthoritySet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether the authority is present
func (s AuthoritySet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// HasAny reports whether any of the given authorities is present
func (s AuthoritySet) HasAny(names ...string) bool {
	for _, n := range names {
		if s.Has(n) {
			return true
		}
	}
	return false
}

// Values returns the authorities in sorted order for stable logging
func (s AuthoritySet) Values() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// RoleAuthority builds the authority name for a role
func RoleAuthority(roleName string) string {
	return RolePrefix + ModuleName(roleName)
}

// ModuleAuthority builds the authority name for a module
func ModuleAuthority(moduleName string) string {
	return ModulePrefix + ModuleName(moduleName)
}
