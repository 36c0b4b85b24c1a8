package service

import (
	"context"
	"testing"

	"github.com/hirelane/hirelane/internal/settings/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()
	return New(Params{Log: zaptest.NewLogger(t)})
}

func TestGetDefaults(t *testing.T) {
	svc := newTestService(t)

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "#111111", settings.BrandColor)
	assert.Equal(t, domain.GoogleMeet, settings.MeetingProvider)
	assert.Empty(t, settings.MeetingAPIKey)
}

func TestUpdateMergesNonNilFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	color := "#ff6600"
	provider := domain.Zoom
	updated, err := svc.Update(ctx, domain.UpdateSettingsRequest{
		BrandColor:      &color,
		MeetingProvider: &provider,
	})
	require.NoError(t, err)
	assert.Equal(t, color, updated.BrandColor)
	assert.Equal(t, domain.Zoom, updated.MeetingProvider)
	// Untouched fields keep their prior values.
	assert.Equal(t, "https://example.com/careers", updated.CareersURL)

	key := "zk_live_123"
	updated, err = svc.Update(ctx, domain.UpdateSettingsRequest{MeetingAPIKey: &key})
	require.NoError(t, err)
	assert.Equal(t, color, updated.BrandColor)
	assert.Equal(t, key, updated.MeetingAPIKey)
}

func TestUpdateRejectsUnknownProvider(t *testing.T) {
	svc := newTestService(t)

	bad := domain.MeetingProvider("facetime")
	_, err := svc.Update(context.Background(), domain.UpdateSettingsRequest{MeetingProvider: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidProvider)

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.GoogleMeet, settings.MeetingProvider)
}
