package service

import (
	"context"
	"sort"
	"strings"

	"github.com/hirelane/hirelane/internal/clock"
	"github.com/hirelane/hirelane/internal/ident"
	"github.com/hirelane/hirelane/internal/store"
	"github.com/hirelane/hirelane/internal/team/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	Store *store.Store
	Clock clock.Clock
	GenID *ident.Generator
}

type Service struct {
	log   *zap.Logger
	store *store.Store
	clock clock.Clock
	genID *ident.Generator
}

func New(p Params) domain.Service {
	return &Service{
		log:   p.Log.Named("team.service"),
		store: p.Store,
		clock: p.Clock,
		genID: p.GenID,
	}
}

func (s *Service) InviteMember(ctx context.Context, req domain.InviteMemberRequest) (domain.TeamMember, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.TeamMember{}, domain.ErrInvalidName
	}

	var invited domain.TeamMember
	if err := s.store.Update(func(st *store.State) error {
		// An invite to a role that does not exist would leave a dangling
		// reference, so the role must resolve up front.
		if st.FindRole(req.RoleID) == nil {
			return domain.ErrRoleNotFound
		}
		member := &domain.TeamMember{
			ID:     s.genID.New("mem"),
			Name:   name,
			Email:  strings.TrimSpace(req.Email),
			RoleID: req.RoleID,
			Status: domain.StatusInvited,
		}
		st.Members = append(st.Members, member)
		invited = *member
		return nil
	}); err != nil {
		return domain.TeamMember{}, err
	}

	s.log.Info("member invited",
		zap.String("member_id", invited.ID),
		zap.String("role_id", invited.RoleID),
	)
	return invited, nil
}

// ResendInvite re-triggers the invitation email. Delivery is stubbed; only
// the existence check is real.
func (s *Service) ResendInvite(ctx context.Context, id string) error {
	if err := s.store.View(func(st *store.State) error {
		if st.FindMember(id) == nil {
			return domain.ErrMemberNotFound
		}
		return nil
	}); err != nil {
		return err
	}
	s.log.Info("invite resent", zap.String("member_id", id))
	return nil
}

func (s *Service) RemoveMember(ctx context.Context, id string) error {
	if err := s.store.Update(func(st *store.State) error {
		for i, m := range st.Members {
			if m.ID == id {
				st.Members = append(st.Members[:i], st.Members[i+1:]...)
				return nil
			}
		}
		return domain.ErrMemberNotFound
	}); err != nil {
		return err
	}
	s.log.Info("member removed", zap.String("member_id", id))
	return nil
}

func (s *Service) SetMemberRole(ctx context.Context, id, roleID string) (domain.TeamMember, error) {
	var updated domain.TeamMember
	if err := s.store.Update(func(st *store.State) error {
		if st.FindRole(roleID) == nil {
			return domain.ErrRoleNotFound
		}
		member := st.FindMember(id)
		if member == nil {
			return domain.ErrMemberNotFound
		}
		member.RoleID = roleID
		updated = *member
		return nil
	}); err != nil {
		return domain.TeamMember{}, err
	}
	return updated, nil
}

func (s *Service) SetMemberStatus(ctx context.Context, id string, status domain.MemberStatus) (domain.TeamMember, error) {
	if !status.Valid() {
		return domain.TeamMember{}, domain.ErrInvalidMemberStatus
	}

	var updated domain.TeamMember
	if err := s.store.Update(func(st *store.State) error {
		member := st.FindMember(id)
		if member == nil {
			return domain.ErrMemberNotFound
		}
		member.Status = status
		updated = *member
		return nil
	}); err != nil {
		return domain.TeamMember{}, err
	}

	s.log.Info("member status changed",
		zap.String("member_id", id),
		zap.String("status", string(status)),
	)
	return updated, nil
}

func (s *Service) ListMembers(ctx context.Context) ([]domain.TeamMember, error) {
	var members []domain.TeamMember
	if err := s.store.View(func(st *store.State) error {
		members = make([]domain.TeamMember, 0, len(st.Members))
		for _, m := range st.Members {
			members = append(members, *m)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	// Pending invites surface first; otherwise insertion order is kept.
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Status == domain.StatusInvited && members[j].Status != domain.StatusInvited
	})
	return members, nil
}

func (s *Service) AddRole(ctx context.Context, req domain.AddRoleRequest) (domain.Role, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Role{}, domain.ErrInvalidName
	}

	role := &domain.Role{
		ID:          s.genID.New("role"),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Permissions: domain.BlankPermissions(),
		System:      false,
	}

	if err := s.store.Update(func(st *store.State) error {
		st.Roles = append(st.Roles, role)
		return nil
	}); err != nil {
		return domain.Role{}, err
	}

	s.log.Info("role added", zap.String("role_id", role.ID), zap.String("name", role.Name))
	return role.Clone(), nil
}

func (s *Service) UpdateRolePermissions(ctx context.Context, roleID string, perms map[domain.PermissionKey]bool) (domain.Role, error) {
	for key := range perms {
		if !key.Valid() {
			return domain.Role{}, domain.ErrInvalidPermission
		}
	}

	var updated domain.Role
	if err := s.store.Update(func(st *store.State) error {
		role := st.FindRole(roleID)
		if role == nil {
			return domain.ErrRoleNotFound
		}
		// Merge: keys absent from the request keep their prior grant.
		for key, granted := range perms {
			role.Permissions[key] = granted
		}
		updated = role.Clone()
		return nil
	}); err != nil {
		return domain.Role{}, err
	}

	s.log.Info("role permissions updated", zap.String("role_id", roleID))
	return updated, nil
}

func (s *Service) RemoveRole(ctx context.Context, roleID string) error {
	if err := s.store.Update(func(st *store.State) error {
		role := st.FindRole(roleID)
		if role == nil {
			return domain.ErrRoleNotFound
		}
		if role.System {
			return domain.ErrRoleProtected
		}
		for _, m := range st.Members {
			if m.RoleID == roleID {
				return domain.ErrRoleInUse
			}
		}
		for i, r := range st.Roles {
			if r.ID == roleID {
				st.Roles = append(st.Roles[:i], st.Roles[i+1:]...)
				break
			}
		}
		return nil
	}); err != nil {
		return err
	}

	s.log.Info("role removed", zap.String("role_id", roleID))
	return nil
}

func (s *Service) ListRoles(ctx context.Context) ([]domain.Role, error) {
	var roles []domain.Role
	if err := s.store.View(func(st *store.State) error {
		roles = make([]domain.Role, 0, len(st.Roles))
		for _, r := range st.Roles {
			roles = append(roles, r.Clone())
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return roles, nil
}
