package domain

import (
	"fmt"
	"time"
)

// DeriveSeriesID builds the deterministic series key used when a next round
// is created without an explicit series. Two independent series of the same
// type for one applicant collide on this key; callers that need separate
// series must supply their own series ID.
func DeriveSeriesID(applicantID string, t MeetingType) string {
	return fmt.Sprintf("series_%s_%s", applicantID, t)
}

type MeetingType string

const (
	PhoneScreen MeetingType = "phone_screen"
	Technical   MeetingType = "technical"
	Onsite      MeetingType = "onsite"
	Offer       MeetingType = "offer"
)

func (t MeetingType) Valid() bool {
	switch t {
	case PhoneScreen, Technical, Onsite, Offer:
		return true
	default:
		return false
	}
}

type MeetingStatus string

const (
	StatusScheduled MeetingStatus = "scheduled"
	StatusCompleted MeetingStatus = "completed"
	StatusCanceled  MeetingStatus = "canceled"
)

func (s MeetingStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further mutation of the meeting is permitted.
func (s MeetingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// statusTransitions encodes the meeting state machine: a scheduled meeting
// may complete or cancel, both of which are terminal.
var statusTransitions = map[MeetingStatus]map[MeetingStatus]bool{
	StatusScheduled: {StatusCompleted: true, StatusCanceled: true},
	StatusCompleted: {},
	StatusCanceled:  {},
}

func TransitionAllowed(from, to MeetingStatus) bool {
	return statusTransitions[from][to]
}

// Meeting is a single interview round. JobID is a snapshot copied from the
// applicant at creation time, not a live reference. Round and SeriesID link
// multi-round interview series; both are empty for standalone meetings.
type Meeting struct {
	ID            string        `json:"id"`
	ApplicantID   string        `json:"applicant_id"`
	JobID         string        `json:"job_id"`
	Type          MeetingType   `json:"type"`
	Status        MeetingStatus `json:"status"`
	ScheduledAt   time.Time     `json:"scheduled_at"`
	DurationMins  int           `json:"duration_mins"`
	Interviewer   string        `json:"interviewer"`
	LocationOrURL string        `json:"location_or_url,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	Round         int           `json:"round,omitempty"`
	SeriesID      string        `json:"series_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
