package service

import (
	"context"
	"sort"
	"strings"

	"github.com/hirelane/hirelane/internal/applicant/domain"
	"github.com/hirelane/hirelane/internal/clock"
	"github.com/hirelane/hirelane/internal/ident"
	jobdomain "github.com/hirelane/hirelane/internal/job/domain"
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
		log:   p.Log.Named("applicant.service"),
		store: p.Store,
		clock: p.Clock,
		genID: p.GenID,
	}
}

func (s *Service) Add(ctx context.Context, req domain.AddApplicantRequest) (domain.Applicant, error) {
	var created domain.Applicant
	if err := s.store.Update(func(st *store.State) error {
		job := st.FindJob(req.JobID)
		if job == nil {
			return jobdomain.ErrNotFound
		}

		now := s.clock.Now()
		app := &domain.Applicant{
			ID:        s.genID.New("app"),
			JobID:     job.ID,
			Name:      strings.TrimSpace(req.Name),
			Email:     strings.TrimSpace(req.Email),
			Location:  strings.TrimSpace(req.Location),
			Source:    req.Source,
			Stage:     domain.StageNew,
			CreatedAt: now,
			UpdatedAt: now,
		}
		st.Applicants = append([]*domain.Applicant{app}, st.Applicants...)

		// Recount rather than increment so the denormalized count cannot
		// drift from the applicant collection.
		job.ApplicantsCount = st.CountApplicants(job.ID)
		job.UpdatedAt = now

		created = *app
		return nil
	}); err != nil {
		return domain.Applicant{}, err
	}

	s.log.Info("applicant added",
		zap.String("applicant_id", created.ID),
		zap.String("job_id", created.JobID),
	)
	return created, nil
}

func (s *Service) MoveStage(ctx context.Context, id string, stage domain.Stage) (domain.Applicant, error) {
	if !stage.Valid() {
		return domain.Applicant{}, domain.ErrInvalidStage
	}

	var moved domain.Applicant
	if err := s.store.Update(func(st *store.State) error {
		app := st.FindApplicant(id)
		if app == nil {
			return domain.ErrNotFound
		}
		// The transition table currently allows every move, including
		// re-entering "new". That is the documented pipeline behavior,
		// not a missing check.
		if !domain.TransitionAllowed(app.Stage, stage) {
			return domain.ErrInvalidStage
		}
		app.Stage = stage
		app.UpdatedAt = s.clock.Now()
		moved = *app
		return nil
	}); err != nil {
		return domain.Applicant{}, err
	}

	s.log.Info("applicant stage moved",
		zap.String("applicant_id", id),
		zap.String("stage", string(stage)),
	)
	return moved, nil
}

func (s *Service) List(ctx context.Context, req domain.ListApplicantsRequest) ([]domain.Applicant, error) {
	var applicants []domain.Applicant
	if err := s.store.View(func(st *store.State) error {
		applicants = make([]domain.Applicant, 0, len(st.Applicants))
		for _, a := range st.Applicants {
			if req.JobID != "" && a.JobID != req.JobID {
				continue
			}
			applicants = append(applicants, *a)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	sort.SliceStable(applicants, func(i, j int) bool {
		return applicants[i].UpdatedAt.After(applicants[j].UpdatedAt)
	})
	return applicants, nil
}
