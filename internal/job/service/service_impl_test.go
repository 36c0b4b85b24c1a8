package service

import (
	"context"
	"testing"
	"time"

	"github.com/hirelane/hirelane/internal/clock"
	"github.com/hirelane/hirelane/internal/ident"
	"github.com/hirelane/hirelane/internal/job/domain"
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

func TestCreate(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC))
	svc, _ := newTestService(t, clk)
	ctx := context.Background()

	job, err := svc.Create(ctx, domain.CreateJobRequest{
		Title:          "  Backend Engineer ",
		Department:     "Engineering",
		Location:       "Remote",
		EmploymentType: domain.FullTime,
		Description:    "Build the data layer.",
		Requirements:   []string{"Go", "SQL"},
	})
	require.NoError(t, err)

	assert.Regexp(t, `^job_[0-9a-z]{8}$`, job.ID)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, domain.StatusDraft, job.Status)
	assert.Equal(t, 0, job.ApplicantsCount)
	assert.Equal(t, clk.Now(), job.CreatedAt)
	assert.Equal(t, job.CreatedAt, job.UpdatedAt)
	assert.Equal(t, []string{"Go", "SQL"}, job.Requirements)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t, clock.SystemClock{})
	ctx := context.Background()

	t.Run("BlankTitle", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.CreateJobRequest{Title: "   ", EmploymentType: domain.FullTime})
		assert.ErrorIs(t, err, domain.ErrInvalidTitle)
	})

	t.Run("UnknownEmploymentType", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.CreateJobRequest{Title: "Engineer", EmploymentType: "freelance"})
		assert.ErrorIs(t, err, domain.ErrInvalidEmploymentType)
	})
}

func TestSetStatus(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC))
	svc, _ := newTestService(t, clk)
	ctx := context.Background()

	job, err := svc.Create(ctx, domain.CreateJobRequest{Title: "Engineer", EmploymentType: domain.Contract})
	require.NoError(t, err)

	// Posting status is not a forward-only machine: closed postings can be
	// pulled back to draft.
	for _, status := range []domain.JobStatus{domain.StatusPublished, domain.StatusClosed, domain.StatusDraft} {
		clk.Advance(time.Minute)
		updated, err := svc.SetStatus(ctx, job.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
		assert.Equal(t, clk.Now(), updated.UpdatedAt)
	}

	t.Run("UnknownJob", func(t *testing.T) {
		_, err := svc.SetStatus(ctx, "job_missing", domain.StatusPublished)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		_, err := svc.SetStatus(ctx, job.ID, "archived")
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})
}

func TestListOrdersByUpdatedAtDesc(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC))
	svc, _ := newTestService(t, clk)
	ctx := context.Background()

	first, err := svc.Create(ctx, domain.CreateJobRequest{Title: "First", EmploymentType: domain.FullTime})
	require.NoError(t, err)
	clk.Advance(time.Minute)
	second, err := svc.Create(ctx, domain.CreateJobRequest{Title: "Second", EmploymentType: domain.FullTime})
	require.NoError(t, err)

	// Touching the older posting moves it to the front.
	clk.Advance(time.Minute)
	_, err = svc.SetStatus(ctx, first.ID, domain.StatusPublished)
	require.NoError(t, err)

	jobs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, first.ID, jobs[0].ID)
	assert.Equal(t, second.ID, jobs[1].ID)
}

func TestGetByID(t *testing.T) {
	svc, _ := newTestService(t, clock.SystemClock{})
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateJobRequest{Title: "Engineer", EmploymentType: domain.PartTime})
	require.NoError(t, err)

	found, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetByID(ctx, "job_missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
