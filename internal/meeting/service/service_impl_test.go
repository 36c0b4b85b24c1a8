package service

import (
	"context"
	"testing"
	"time"

	applicantdomain "github.com/hirelane/hirelane/internal/applicant/domain"
	"github.com/hirelane/hirelane/internal/clock"
	"github.com/hirelane/hirelane/internal/ident"
	"github.com/hirelane/hirelane/internal/meeting/domain"
	"github.com/hirelane/hirelane/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestService(t *testing.T, clk clock.Clock) (*Service, *store.Store) {
	t.Helper()
	st := store.New()
	return &Service{
		log:   zaptest.NewLogger(t),
		store: st,
		clock: clk,
		genID: ident.NewGenerator(),
	}, st
}

func seedApplicant(t *testing.T, st *store.Store, id, jobID string, at time.Time) {
	t.Helper()
	require.NoError(t, st.Update(func(state *store.State) error {
		state.Applicants = append(state.Applicants, &applicantdomain.Applicant{
			ID:        id,
			JobID:     jobID,
			Name:      "Candidate",
			Stage:     applicantdomain.StageInterview,
			CreatedAt: at,
			UpdatedAt: at,
		})
		return nil
	}))
}

func TestCreate(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC))
	svc, st := newTestService(t, clk)
	ctx := context.Background()

	seedApplicant(t, st, "app_1", "job_1", clk.Now())
	scheduledAt := clk.Now().Add(48 * time.Hour)

	m, err := svc.Create(ctx, domain.CreateMeetingRequest{
		ApplicantID: "app_1",
		Type:        domain.Technical,
		ScheduledAt: scheduledAt,
		Interviewer: "Dana Reyes",
	})
	require.NoError(t, err)

	assert.Regexp(t, `^meet_[0-9a-z]{8}$`, m.ID)
	assert.Equal(t, domain.StatusScheduled, m.Status)
	assert.Equal(t, "job_1", m.JobID)
	assert.Equal(t, domain.DefaultDurationMins, m.DurationMins)
	assert.Equal(t, scheduledAt, m.ScheduledAt)
	assert.Zero(t, m.Round)
	assert.Empty(t, m.SeriesID)
}

func TestCreateJobIDIsASnapshot(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC))
	svc, st := newTestService(t, clk)
	ctx := context.Background()

	seedApplicant(t, st, "app_1", "job_1", clk.Now())
	m, err := svc.Create(ctx, domain.CreateMeetingRequest{
		ApplicantID: "app_1",
		Type:        domain.Onsite,
		ScheduledAt: clk.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	// Moving the applicant to another job must not rewrite the meeting.
	require.NoError(t, st.Update(func(state *store.State) error {
		state.FindApplicant("app_1").JobID = "job_2"
		return nil
	}))

	meetings, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.Equal(t, m.ID, meetings[0].ID)
	assert.Equal(t, "job_1", meetings[0].JobID)
}

func TestCreateValidation(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC))
	svc, st := newTestService(t, clk)
	ctx := context.Background()
	seedApplicant(t, st, "app_1", "job_1", clk.Now())

	t.Run("UnknownType", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.CreateMeetingRequest{
			ApplicantID: "app_1",
			Type:        "culture_fit",
			ScheduledAt: clk.Now().Add(time.Hour),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidType)
	})

	t.Run("MissingSchedule", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.CreateMeetingRequest{
			ApplicantID: "app_1",
			Type:        domain.PhoneScreen,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidSchedule)
	})

	t.Run("UnknownApplicant", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.CreateMeetingRequest{
			ApplicantID: "app_missing",
			Type:        domain.PhoneScreen,
			ScheduledAt: clk.Now().Add(time.Hour),
		})
		assert.ErrorIs(t, err, applicantdomain.ErrNotFound)

		require.NoError(t, st.View(func(state *store.State) error {
			assert.Empty(t, state.Meetings)
			return nil
		}))
	})
}

func TestReschedule(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC))
	svc, st := newTestService(t, clk)
	ctx := context.Background()

	seedApplicant(t, st, "app_1", "job_1", clk.Now())
	m, err := svc.Create(ctx, domain.CreateMeetingRequest{
		ApplicantID: "app_1",
		Type:        domain.PhoneScreen,
		ScheduledAt: clk.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	later := clk.Now().Add(72 * time.Hour)
	clk.Advance(time.Minute)
	updated, err := svc.Reschedule(ctx, m.ID, domain.RescheduleRequest{ScheduledAt: later, DurationMins: 45})
	require.NoError(t, err)
	assert.Equal(t, later, updated.ScheduledAt)
	assert.Equal(t, 45, updated.DurationMins)
	assert.True(t, updated.UpdatedAt.After(m.UpdatedAt))

	t.Run("FinishedMeeting", func(t *testing.T) {
		_, err := svc.Cancel(ctx, m.ID)
		require.NoError(t, err)
		_, err = svc.Reschedule(ctx, m.ID, domain.RescheduleRequest{ScheduledAt: later, DurationMins: 30})
		assert.ErrorIs(t, err, domain.ErrMeetingFinished)
	})
}

func TestSetStatus(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC))
	svc, st := newTestService(t, clk)
	ctx := context.Background()
	seedApplicant(t, st, "app_1", "job_1", clk.Now())

	create := func(t *testing.T) domain.Meeting {
		m, err := svc.Create(ctx, domain.CreateMeetingRequest{
			ApplicantID: "app_1",
			Type:        domain.Technical,
			ScheduledAt: clk.Now().Add(time.Hour),
		})
		require.NoError(t, err)
		return m
	}

	t.Run("Complete", func(t *testing.T) {
		m := create(t)
		completed, err := svc.Complete(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, completed.Status)

		// Terminal states stay terminal.
		_, err = svc.Cancel(ctx, m.ID)
		assert.ErrorIs(t, err, domain.ErrMeetingFinished)
	})

	t.Run("SelfTransition", func(t *testing.T) {
		m := create(t)
		_, err := svc.SetStatus(ctx, m.ID, domain.StatusScheduled)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("UnknownMeeting", func(t *testing.T) {
		_, err := svc.SetStatus(ctx, "meet_missing", domain.StatusCompleted)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCreateNextRound(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC))
	svc, st := newTestService(t, clk)
	ctx := context.Background()
	seedApplicant(t, st, "app_1", "job_1", clk.Now())

	second, err := svc.CreateNextRound(ctx, domain.CreateNextRoundRequest{
		ApplicantID: "app_1",
		Type:        domain.Technical,
		ScheduledAt: clk.Now().Add(24 * time.Hour),
		Interviewer: "Dana Reyes",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Round)
	assert.Equal(t, "series_app_1_technical", second.SeriesID)
	assert.Equal(t, domain.DefaultNextRoundDurationMins, second.DurationMins)

	third, err := svc.CreateNextRound(ctx, domain.CreateNextRoundRequest{
		ApplicantID:  "app_1",
		Type:         domain.Technical,
		ScheduledAt:  clk.Now().Add(48 * time.Hour),
		CurrentRound: second.Round,
		SeriesID:     second.SeriesID,
		DurationMins: 90,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, third.Round)
	assert.Equal(t, second.SeriesID, third.SeriesID)
	assert.Equal(t, 90, third.DurationMins)
}

func TestListOrdersByScheduledAt(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC))
	svc, st := newTestService(t, clk)
	ctx := context.Background()
	seedApplicant(t, st, "app_1", "job_1", clk.Now())

	late, err := svc.Create(ctx, domain.CreateMeetingRequest{
		ApplicantID: "app_1",
		Type:        domain.Onsite,
		ScheduledAt: clk.Now().Add(96 * time.Hour),
	})
	require.NoError(t, err)
	early, err := svc.Create(ctx, domain.CreateMeetingRequest{
		ApplicantID: "app_1",
		Type:        domain.PhoneScreen,
		ScheduledAt: clk.Now().Add(2 * time.Hour),
	})
	require.NoError(t, err)

	meetings, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, meetings, 2)
	assert.Equal(t, early.ID, meetings[0].ID)
	assert.Equal(t, late.ID, meetings[1].ID)
}
