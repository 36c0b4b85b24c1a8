package service

import (
	"context"
	"sort"
	"strings"

	"github.com/hirelane/hirelane/internal/clock"
	"github.com/hirelane/hirelane/internal/ident"
	"github.com/hirelane/hirelane/internal/job/domain"
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
		log:   p.Log.Named("job.service"),
		store: p.Store,
		clock: p.Clock,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateJobRequest) (domain.Job, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.Job{}, domain.ErrInvalidTitle
	}
	if !req.EmploymentType.Valid() {
		return domain.Job{}, domain.ErrInvalidEmploymentType
	}

	now := s.clock.Now()
	job := &domain.Job{
		ID:             s.genID.New("job"),
		Title:          title,
		Department:     strings.TrimSpace(req.Department),
		Location:       strings.TrimSpace(req.Location),
		EmploymentType: req.EmploymentType,
		Description:    req.Description,
		Requirements:   append([]string(nil), req.Requirements...),
		Status:         domain.StatusDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.store.Update(func(st *store.State) error {
		// Newest postings sit at the head when no explicit sort applies.
		st.Jobs = append([]*domain.Job{job}, st.Jobs...)
		return nil
	}); err != nil {
		return domain.Job{}, err
	}

	s.log.Info("job created",
		zap.String("job_id", job.ID),
		zap.String("title", job.Title),
	)
	return *job, nil
}

func (s *Service) SetStatus(ctx context.Context, id string, status domain.JobStatus) (domain.Job, error) {
	if !status.Valid() {
		return domain.Job{}, domain.ErrInvalidStatus
	}

	var updated domain.Job
	if err := s.store.Update(func(st *store.State) error {
		job := st.FindJob(id)
		if job == nil {
			return domain.ErrNotFound
		}
		job.Status = status
		job.UpdatedAt = s.clock.Now()
		updated = *job
		return nil
	}); err != nil {
		return domain.Job{}, err
	}

	s.log.Info("job status changed",
		zap.String("job_id", id),
		zap.String("status", string(status)),
	)
	return updated, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := s.store.View(func(st *store.State) error {
		jobs = make([]domain.Job, 0, len(st.Jobs))
		for _, j := range st.Jobs {
			jobs = append(jobs, *j)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].UpdatedAt.After(jobs[j].UpdatedAt)
	})
	return jobs, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Job, error) {
	var job domain.Job
	if err := s.store.View(func(st *store.State) error {
		found := st.FindJob(id)
		if found == nil {
			return domain.ErrNotFound
		}
		job = *found
		return nil
	}); err != nil {
		return domain.Job{}, err
	}
	return job, nil
}
