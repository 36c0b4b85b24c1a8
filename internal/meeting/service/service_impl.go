package service

import (
	"context"
	"sort"
	"strings"

	applicantdomain "github.com/hirelane/hirelane/internal/applicant/domain"
	"github.com/hirelane/hirelane/internal/clock"
	"github.com/hirelane/hirelane/internal/ident"
	"github.com/hirelane/hirelane/internal/meeting/domain"
	"github.com/hirelane/hirelane/internal/store"
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
		log:   p.Log.Named("meeting.service"),
		store: p.Store,
		clock: p.Clock,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateMeetingRequest) (domain.Meeting, error) {
	if !req.Type.Valid() {
		return domain.Meeting{}, domain.ErrInvalidType
	}
	if req.ScheduledAt.IsZero() {
		return domain.Meeting{}, domain.ErrInvalidSchedule
	}

	duration := req.DurationMins
	if duration <= 0 {
		duration = domain.DefaultDurationMins
	}

	var created domain.Meeting
	if err := s.store.Update(func(st *store.State) error {
		applicant := st.FindApplicant(req.ApplicantID)
		if applicant == nil {
			return applicantdomain.ErrNotFound
		}

		now := s.clock.Now()
		m := &domain.Meeting{
			ID:          s.genID.New("meet"),
			ApplicantID: applicant.ID,
			// Snapshot of the applicant's job at creation time; it does not
			// track later changes to the applicant.
			JobID:         applicant.JobID,
			Type:          req.Type,
			Status:        domain.StatusScheduled,
			ScheduledAt:   req.ScheduledAt,
			DurationMins:  duration,
			Interviewer:   strings.TrimSpace(req.Interviewer),
			LocationOrURL: strings.TrimSpace(req.LocationOrURL),
			Notes:         req.Notes,
			Round:         req.Round,
			SeriesID:      req.SeriesID,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		st.Meetings = append(st.Meetings, m)
		created = *m
		return nil
	}); err != nil {
		return domain.Meeting{}, err
	}

	s.log.Info("meeting created",
		zap.String("meeting_id", created.ID),
		zap.String("applicant_id", created.ApplicantID),
		zap.String("type", string(created.Type)),
	)
	return created, nil
}

func (s *Service) Reschedule(ctx context.Context, id string, req domain.RescheduleRequest) (domain.Meeting, error) {
	if req.ScheduledAt.IsZero() || req.DurationMins <= 0 {
		return domain.Meeting{}, domain.ErrInvalidSchedule
	}

	var updated domain.Meeting
	if err := s.store.Update(func(st *store.State) error {
		m := st.FindMeeting(id)
		if m == nil {
			return domain.ErrNotFound
		}
		if m.Status.Terminal() {
			return domain.ErrMeetingFinished
		}
		m.ScheduledAt = req.ScheduledAt
		m.DurationMins = req.DurationMins
		m.UpdatedAt = s.clock.Now()
		updated = *m
		return nil
	}); err != nil {
		return domain.Meeting{}, err
	}

	s.log.Info("meeting rescheduled", zap.String("meeting_id", id))
	return updated, nil
}

func (s *Service) SetStatus(ctx context.Context, id string, status domain.MeetingStatus) (domain.Meeting, error) {
	if !status.Valid() {
		return domain.Meeting{}, domain.ErrInvalidStatus
	}

	var updated domain.Meeting
	if err := s.store.Update(func(st *store.State) error {
		m := st.FindMeeting(id)
		if m == nil {
			return domain.ErrNotFound
		}
		if m.Status.Terminal() {
			return domain.ErrMeetingFinished
		}
		if !domain.TransitionAllowed(m.Status, status) {
			return domain.ErrInvalidTransition
		}
		m.Status = status
		m.UpdatedAt = s.clock.Now()
		updated = *m
		return nil
	}); err != nil {
		return domain.Meeting{}, err
	}

	s.log.Info("meeting status changed",
		zap.String("meeting_id", id),
		zap.String("status", string(status)),
	)
	return updated, nil
}

func (s *Service) Complete(ctx context.Context, id string) (domain.Meeting, error) {
	return s.SetStatus(ctx, id, domain.StatusCompleted)
}

func (s *Service) Cancel(ctx context.Context, id string) (domain.Meeting, error) {
	return s.SetStatus(ctx, id, domain.StatusCanceled)
}

func (s *Service) CreateNextRound(ctx context.Context, req domain.CreateNextRoundRequest) (domain.Meeting, error) {
	current := req.CurrentRound
	if current <= 0 {
		// A meeting without an explicit round is round one.
		current = 1
	}

	seriesID := strings.TrimSpace(req.SeriesID)
	if seriesID == "" {
		seriesID = domain.DeriveSeriesID(req.ApplicantID, req.Type)
	}

	duration := req.DurationMins
	if duration <= 0 {
		duration = domain.DefaultNextRoundDurationMins
	}

	return s.Create(ctx, domain.CreateMeetingRequest{
		ApplicantID:   req.ApplicantID,
		Type:          req.Type,
		ScheduledAt:   req.ScheduledAt,
		DurationMins:  duration,
		Interviewer:   req.Interviewer,
		LocationOrURL: req.LocationOrURL,
		Notes:         req.Notes,
		Round:         current + 1,
		SeriesID:      seriesID,
	})
}

func (s *Service) List(ctx context.Context) ([]domain.Meeting, error) {
	var meetings []domain.Meeting
	if err := s.store.View(func(st *store.State) error {
		meetings = make([]domain.Meeting, 0, len(st.Meetings))
		for _, m := range st.Meetings {
			meetings = append(meetings, *m)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	sort.SliceStable(meetings, func(i, j int) bool {
		return meetings[i].ScheduledAt.Before(meetings[j].ScheduledAt)
	})
	return meetings, nil
}
