package domain

import "time"

type PermissionKey string

const (
	ManageBilling    PermissionKey = "manage_billing"
	ManageJobs       PermissionKey = "manage_jobs"
	ManageApplicants PermissionKey = "manage_applicants"
	ViewReports      PermissionKey = "view_reports"
	ManageTeam       PermissionKey = "manage_team"
	EditSettings     PermissionKey = "edit_settings"
)

// PermissionKeys is the closed set of grantable permissions.
var PermissionKeys = []PermissionKey{
	ManageBilling,
	ManageJobs,
	ManageApplicants,
	ViewReports,
	ManageTeam,
	EditSettings,
}

func (k PermissionKey) Valid() bool {
	for _, key := range PermissionKeys {
		if k == key {
			return true
		}
	}
	return false
}

// BlankPermissions returns a grant map with every permission denied, the
// starting point for custom roles.
func BlankPermissions() map[PermissionKey]bool {
	perms := make(map[PermissionKey]bool, len(PermissionKeys))
	for _, key := range PermissionKeys {
		perms[key] = false
	}
	return perms
}

// Role carries a permission grant map. System roles are seeded built-ins and
// can never be removed. Nothing in this layer enforces the grants; they are
// data for the caller.
type Role struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Permissions map[PermissionKey]bool `json:"permissions"`
	System      bool                   `json:"system"`
}

// Clone returns a copy whose permission map does not alias the receiver's.
func (r Role) Clone() Role {
	cloned := r
	cloned.Permissions = make(map[PermissionKey]bool, len(r.Permissions))
	for key, granted := range r.Permissions {
		cloned.Permissions[key] = granted
	}
	return cloned
}

type MemberStatus string

const (
	StatusActive    MemberStatus = "active"
	StatusInvited   MemberStatus = "invited"
	StatusSuspended MemberStatus = "suspended"
)

func (s MemberStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInvited, StatusSuspended:
		return true
	default:
		return false
	}
}

type TeamMember struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	RoleID       string       `json:"role_id"`
	Status       MemberStatus `json:"status"`
	LastActiveAt *time.Time   `json:"last_active_at,omitempty"`
}
