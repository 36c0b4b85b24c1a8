package domain

import (
	"context"
	"errors"
)

type InviteMemberRequest struct {
	Name   string
	Email  string
	RoleID string
}

type AddRoleRequest struct {
	Name        string
	Description string
}

type Service interface {
	InviteMember(context.Context, InviteMemberRequest) (TeamMember, error)
	ResendInvite(ctx context.Context, id string) error
	RemoveMember(ctx context.Context, id string) error
	SetMemberRole(ctx context.Context, id, roleID string) (TeamMember, error)
	SetMemberStatus(ctx context.Context, id string, status MemberStatus) (TeamMember, error)
	ListMembers(context.Context) ([]TeamMember, error)

	AddRole(context.Context, AddRoleRequest) (Role, error)
	UpdateRolePermissions(ctx context.Context, roleID string, perms map[PermissionKey]bool) (Role, error)
	RemoveRole(ctx context.Context, roleID string) error
	ListRoles(context.Context) ([]Role, error)
}

var (
	ErrInvalidName         = errors.New("invalid_name")
	ErrInvalidMemberStatus = errors.New("invalid_member_status")
	ErrInvalidPermission   = errors.New("invalid_permission")
	ErrMemberNotFound      = errors.New("member_not_found")
	ErrRoleNotFound        = errors.New("role_not_found")
	// ErrRoleProtected rejects removal of seeded system roles.
	ErrRoleProtected = errors.New("role_protected")
	// ErrRoleInUse rejects removal of a role still assigned to a member.
	ErrRoleInUse = errors.New("role_in_use")
)
