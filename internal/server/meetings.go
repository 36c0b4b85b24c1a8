package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	meetingdomain "github.com/hirelane/hirelane/internal/meeting/domain"
)

type createMeetingRequest struct {
	ApplicantID   string    `json:"applicant_id"`
	Type          string    `json:"type"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	DurationMins  int       `json:"duration_mins"`
	Interviewer   string    `json:"interviewer"`
	LocationOrURL string    `json:"location_or_url"`
	Notes         string    `json:"notes"`
	Round         int       `json:"round"`
	SeriesID      string    `json:"series_id"`
}

func (s *Server) CreateMeeting(c *gin.Context) {
	var req createMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.meetingSvc.Create(c.Request.Context(), meetingdomain.CreateMeetingRequest{
		ApplicantID:   strings.TrimSpace(req.ApplicantID),
		Type:          meetingdomain.MeetingType(req.Type),
		ScheduledAt:   req.ScheduledAt,
		DurationMins:  req.DurationMins,
		Interviewer:   req.Interviewer,
		LocationOrURL: req.LocationOrURL,
		Notes:         req.Notes,
		Round:         req.Round,
		SeriesID:      req.SeriesID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

type createNextRoundRequest struct {
	ApplicantID   string    `json:"applicant_id"`
	Type          string    `json:"type"`
	CurrentRound  int       `json:"current_round"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	DurationMins  int       `json:"duration_mins"`
	Interviewer   string    `json:"interviewer"`
	LocationOrURL string    `json:"location_or_url"`
	Notes         string    `json:"notes"`
	SeriesID      string    `json:"series_id"`
}

func (s *Server) CreateNextRound(c *gin.Context) {
	var req createNextRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.meetingSvc.CreateNextRound(c.Request.Context(), meetingdomain.CreateNextRoundRequest{
		ApplicantID:   strings.TrimSpace(req.ApplicantID),
		Type:          meetingdomain.MeetingType(req.Type),
		CurrentRound:  req.CurrentRound,
		ScheduledAt:   req.ScheduledAt,
		DurationMins:  req.DurationMins,
		Interviewer:   req.Interviewer,
		LocationOrURL: req.LocationOrURL,
		Notes:         req.Notes,
		SeriesID:      req.SeriesID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

type rescheduleMeetingRequest struct {
	ScheduledAt  time.Time `json:"scheduled_at"`
	DurationMins int       `json:"duration_mins"`
}

func (s *Server) RescheduleMeeting(c *gin.Context) {
	var req rescheduleMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.meetingSvc.Reschedule(c.Request.Context(), strings.TrimSpace(c.Param("id")), meetingdomain.RescheduleRequest{
		ScheduledAt:  req.ScheduledAt,
		DurationMins: req.DurationMins,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CompleteMeeting(c *gin.Context) {
	resp, err := s.meetingSvc.Complete(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CancelMeeting(c *gin.Context) {
	resp, err := s.meetingSvc.Cancel(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type setMeetingStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) SetMeetingStatus(c *gin.Context) {
	var req setMeetingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.meetingSvc.SetStatus(c.Request.Context(), strings.TrimSpace(c.Param("id")), meetingdomain.MeetingStatus(req.Status))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListMeetings(c *gin.Context) {
	resp, err := s.meetingSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}
