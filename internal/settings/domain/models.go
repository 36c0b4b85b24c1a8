package domain

import (
	"context"
	"errors"
)

type MeetingProvider string

const (
	GoogleMeet MeetingProvider = "google_meet"
	Zoom       MeetingProvider = "zoom"
	MSTeams    MeetingProvider = "msteams"
	Webex      MeetingProvider = "webex"
	Other      MeetingProvider = "other"
)

func (p MeetingProvider) Valid() bool {
	switch p {
	case GoogleMeet, Zoom, MSTeams, Webex, Other:
		return true
	default:
		return false
	}
}

// Settings is workspace-wide configuration. The meeting provider is a stub;
// no calendar or video integration is wired behind it.
type Settings struct {
	BrandColor      string          `json:"brand_color,omitempty"`
	CareersURL      string          `json:"careers_url,omitempty"`
	MeetingProvider MeetingProvider `json:"meeting_provider,omitempty"`
	MeetingAPIKey   string          `json:"meeting_api_key,omitempty"`
}

// UpdateSettingsRequest merges only the fields that are non-nil.
type UpdateSettingsRequest struct {
	BrandColor      *string
	CareersURL      *string
	MeetingProvider *MeetingProvider
	MeetingAPIKey   *string
}

type Service interface {
	Get(context.Context) (Settings, error)
	Update(context.Context, UpdateSettingsRequest) (Settings, error)
}

var ErrInvalidProvider = errors.New("invalid_meeting_provider")
