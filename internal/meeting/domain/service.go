package domain

import (
	"context"
	"errors"
	"time"
)

const (
	// DefaultDurationMins applies when a standalone meeting is created
	// without a duration.
	DefaultDurationMins = 30
	// DefaultNextRoundDurationMins applies when a follow-up round is created
	// without a duration.
	DefaultNextRoundDurationMins = 60
)

type CreateMeetingRequest struct {
	ApplicantID   string
	Type          MeetingType
	ScheduledAt   time.Time
	DurationMins  int
	Interviewer   string
	LocationOrURL string
	Notes         string
	Round         int
	SeriesID      string
}

type CreateNextRoundRequest struct {
	ApplicantID   string
	Type          MeetingType
	CurrentRound  int
	ScheduledAt   time.Time
	DurationMins  int
	Interviewer   string
	LocationOrURL string
	Notes         string
	SeriesID      string
}

type RescheduleRequest struct {
	ScheduledAt  time.Time
	DurationMins int
}

type Service interface {
	Create(context.Context, CreateMeetingRequest) (Meeting, error)
	Reschedule(ctx context.Context, id string, req RescheduleRequest) (Meeting, error)
	SetStatus(ctx context.Context, id string, status MeetingStatus) (Meeting, error)
	Complete(ctx context.Context, id string) (Meeting, error)
	Cancel(ctx context.Context, id string) (Meeting, error)
	CreateNextRound(context.Context, CreateNextRoundRequest) (Meeting, error)
	List(context.Context) ([]Meeting, error)
}

var (
	ErrInvalidType     = errors.New("invalid_meeting_type")
	ErrInvalidStatus   = errors.New("invalid_meeting_status")
	ErrInvalidSchedule = errors.New("invalid_schedule")
	ErrNotFound        = errors.New("meeting_not_found")
	// ErrMeetingFinished rejects mutation of a completed or canceled meeting.
	ErrMeetingFinished   = errors.New("meeting_finished")
	ErrInvalidTransition = errors.New("invalid_transition")
)
