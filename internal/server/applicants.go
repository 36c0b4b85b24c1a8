package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	applicantdomain "github.com/hirelane/hirelane/internal/applicant/domain"
)

func (s *Server) ListApplicants(c *gin.Context) {
	resp, err := s.applicantSvc.List(c.Request.Context(), applicantdomain.ListApplicantsRequest{
		JobID: strings.TrimSpace(c.Query("job_id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type moveStageRequest struct {
	Stage string `json:"stage"`
}

func (s *Server) MoveApplicantStage(c *gin.Context) {
	var req moveStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.applicantSvc.MoveStage(c.Request.Context(), strings.TrimSpace(c.Param("id")), applicantdomain.Stage(req.Stage))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}
