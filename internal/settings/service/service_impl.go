package service

import (
	"context"
	"sync"

	"github.com/hirelane/hirelane/internal/settings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log *zap.Logger
}

// Service holds workspace settings in its own guarded region, separate from
// the entity store; settings are configuration, not pipeline data.
type Service struct {
	log *zap.Logger

	mu      sync.RWMutex
	current domain.Settings
}

func New(p Params) domain.Service {
	return &Service{
		log: p.Log.Named("settings.service"),
		current: domain.Settings{
			BrandColor:      "#111111",
			CareersURL:      "https://example.com/careers",
			MeetingProvider: domain.GoogleMeet,
		},
	}
}

func (s *Service) Get(ctx context.Context) (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateSettingsRequest) (domain.Settings, error) {
	if req.MeetingProvider != nil && !req.MeetingProvider.Valid() {
		return domain.Settings{}, domain.ErrInvalidProvider
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.BrandColor != nil {
		s.current.BrandColor = *req.BrandColor
	}
	if req.CareersURL != nil {
		s.current.CareersURL = *req.CareersURL
	}
	if req.MeetingProvider != nil {
		s.current.MeetingProvider = *req.MeetingProvider
	}
	if req.MeetingAPIKey != nil {
		s.current.MeetingAPIKey = *req.MeetingAPIKey
	}

	s.log.Info("settings updated")
	return s.current, nil
}
