package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	settingsdomain "github.com/hirelane/hirelane/internal/settings/domain"
)

func (s *Server) GetSettings(c *gin.Context) {
	resp, err := s.settingsSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type updateSettingsRequest struct {
	BrandColor      *string `json:"brand_color"`
	CareersURL      *string `json:"careers_url"`
	MeetingProvider *string `json:"meeting_provider"`
	MeetingAPIKey   *string `json:"meeting_api_key"`
}

func (s *Server) UpdateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	update := settingsdomain.UpdateSettingsRequest{
		BrandColor:    req.BrandColor,
		CareersURL:    req.CareersURL,
		MeetingAPIKey: req.MeetingAPIKey,
	}
	if req.MeetingProvider != nil {
		provider := settingsdomain.MeetingProvider(*req.MeetingProvider)
		update.MeetingProvider = &provider
	}

	resp, err := s.settingsSvc.Update(c.Request.Context(), update)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}
