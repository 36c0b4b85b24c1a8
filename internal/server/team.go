package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	teamdomain "github.com/hirelane/hirelane/internal/team/domain"
)

type inviteMemberRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	RoleID string `json:"role_id"`
}

func (s *Server) InviteMember(c *gin.Context) {
	var req inviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.teamSvc.InviteMember(c.Request.Context(), teamdomain.InviteMemberRequest{
		Name:   req.Name,
		Email:  req.Email,
		RoleID: strings.TrimSpace(req.RoleID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ResendInvite(c *gin.Context) {
	if err := s.teamSvc.ResendInvite(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

func (s *Server) RemoveMember(c *gin.Context) {
	if err := s.teamSvc.RemoveMember(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type setMemberRoleRequest struct {
	RoleID string `json:"role_id"`
}

func (s *Server) SetMemberRole(c *gin.Context) {
	var req setMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.teamSvc.SetMemberRole(c.Request.Context(), strings.TrimSpace(c.Param("id")), strings.TrimSpace(req.RoleID))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type setMemberStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) SetMemberStatus(c *gin.Context) {
	var req setMemberStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.teamSvc.SetMemberStatus(c.Request.Context(), strings.TrimSpace(c.Param("id")), teamdomain.MemberStatus(req.Status))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListMembers(c *gin.Context) {
	resp, err := s.teamSvc.ListMembers(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type addRoleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) AddRole(c *gin.Context) {
	var req addRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.teamSvc.AddRole(c.Request.Context(), teamdomain.AddRoleRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

type updateRolePermissionsRequest struct {
	Permissions map[string]bool `json:"permissions"`
}

func (s *Server) UpdateRolePermissions(c *gin.Context) {
	var req updateRolePermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	perms := make(map[teamdomain.PermissionKey]bool, len(req.Permissions))
	for key, granted := range req.Permissions {
		perms[teamdomain.PermissionKey(key)] = granted
	}

	resp, err := s.teamSvc.UpdateRolePermissions(c.Request.Context(), strings.TrimSpace(c.Param("id")), perms)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) RemoveRole(c *gin.Context) {
	if err := s.teamSvc.RemoveRole(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) ListRoles(c *gin.Context) {
	resp, err := s.teamSvc.ListRoles(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}
