package seed

import (
	"testing"
	"time"

	"github.com/hirelane/hirelane/internal/clock"
	"github.com/hirelane/hirelane/internal/config"
	jobdomain "github.com/hirelane/hirelane/internal/job/domain"
	"github.com/hirelane/hirelane/internal/store"
	teamdomain "github.com/hirelane/hirelane/internal/team/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestFixturesIntegrity(t *testing.T) {
	now := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	st := Fixtures(now)

	t.Run("ApplicantCountsMatchCollection", func(t *testing.T) {
		for _, job := range st.Jobs {
			assert.Equal(t, st.CountApplicants(job.ID), job.ApplicantsCount, "job %s", job.ID)
		}
	})

	t.Run("SingleDefaultPaymentMethod", func(t *testing.T) {
		defaults := 0
		for _, pm := range st.PaymentMethods {
			if pm.IsDefault {
				defaults++
			}
		}
		assert.Equal(t, 1, defaults)
	})

	t.Run("SystemRolesSeeded", func(t *testing.T) {
		require.Len(t, st.Roles, 4)
		for _, role := range st.Roles {
			assert.True(t, role.System, "role %s", role.ID)
			assert.Len(t, role.Permissions, len(teamdomain.PermissionKeys), "role %s", role.ID)
		}
	})

	t.Run("ReferencesResolve", func(t *testing.T) {
		for _, a := range st.Applicants {
			assert.NotNil(t, st.FindJob(a.JobID), "applicant %s", a.ID)
		}
		for _, m := range st.Meetings {
			applicant := st.FindApplicant(m.ApplicantID)
			require.NotNil(t, applicant, "meeting %s", m.ID)
			assert.Equal(t, applicant.JobID, m.JobID, "meeting %s", m.ID)
		}
		for _, member := range st.Members {
			assert.NotNil(t, st.FindRole(member.RoleID), "member %s", member.ID)
		}
	})
}

func TestEnsure(t *testing.T) {
	log := zaptest.NewLogger(t)
	clk := clock.NewFakeClock(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC))

	t.Run("SeedsEmptyStore", func(t *testing.T) {
		st := store.New()
		require.NoError(t, Ensure(config.Config{SeedDemoData: true}, log, st, clk))
		require.NoError(t, st.View(func(state *store.State) error {
			assert.False(t, state.Empty())
			return nil
		}))
	})

	t.Run("Idempotent", func(t *testing.T) {
		st := store.New()
		require.NoError(t, st.Update(func(state *store.State) error {
			state.Jobs = append(state.Jobs, &jobdomain.Job{ID: "job_custom"})
			return nil
		}))

		require.NoError(t, Ensure(config.Config{SeedDemoData: true}, log, st, clk))
		require.NoError(t, st.View(func(state *store.State) error {
			assert.Len(t, state.Jobs, 1)
			assert.Empty(t, state.Roles)
			return nil
		}))
	})

	t.Run("Disabled", func(t *testing.T) {
		st := store.New()
		require.NoError(t, Ensure(config.Config{SeedDemoData: false}, log, st, clk))
		require.NoError(t, st.View(func(state *store.State) error {
			assert.True(t, state.Empty())
			return nil
		}))
	})
}
