package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	applicantdomain "github.com/hirelane/hirelane/internal/applicant/domain"
	jobdomain "github.com/hirelane/hirelane/internal/job/domain"
)

type createJobRequest struct {
	Title          string   `json:"title"`
	Department     string   `json:"department"`
	Location       string   `json:"location"`
	EmploymentType string   `json:"employment_type"`
	Description    string   `json:"description"`
	Requirements   []string `json:"requirements"`
}

func (s *Server) CreateJob(c *gin.Context) {
	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.jobSvc.Create(c.Request.Context(), jobdomain.CreateJobRequest{
		Title:          req.Title,
		Department:     req.Department,
		Location:       req.Location,
		EmploymentType: jobdomain.EmploymentType(req.EmploymentType),
		Description:    req.Description,
		Requirements:   req.Requirements,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListJobs(c *gin.Context) {
	resp, err := s.jobSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetJob(c *gin.Context) {
	resp, err := s.jobSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type setJobStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) SetJobStatus(c *gin.Context) {
	var req setJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.jobSvc.SetStatus(c.Request.Context(), strings.TrimSpace(c.Param("id")), jobdomain.JobStatus(req.Status))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type addApplicantRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location"`
	Source   string `json:"source"`
}

func (s *Server) AddApplicant(c *gin.Context) {
	var req addApplicantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = "Manual"
	}

	resp, err := s.applicantSvc.Add(c.Request.Context(), applicantdomain.AddApplicantRequest{
		JobID:    strings.TrimSpace(c.Param("id")),
		Name:     req.Name,
		Email:    req.Email,
		Location: req.Location,
		Source:   source,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}
