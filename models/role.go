// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is a closed-set label determining which operations a user may perform.
type Role string

const (
	RoleAdmin       Role = "Admin"
	RoleContributor Role = "Contributor"
	RoleViewer      Role = "Viewer"
)

// AllRoles lists every valid [Role] value.
var AllRoles = []Role{RoleAdmin, RoleContributor, RoleViewer}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// In reports whether r is contained in roles.
func (r Role) In(roles ...Role) bool {
	for _, allowed := range roles {
		if r == allowed {
			return true
		}
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
