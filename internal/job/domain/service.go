package domain

import (
	"context"
	"errors"
)

type CreateJobRequest struct {
	Title          string
	Department     string
	Location       string
	EmploymentType EmploymentType
	Description    string
	Requirements   []string
}

type Service interface {
	Create(context.Context, CreateJobRequest) (Job, error)
	SetStatus(ctx context.Context, id string, status JobStatus) (Job, error)
	List(context.Context) ([]Job, error)
	GetByID(ctx context.Context, id string) (Job, error)
}

var (
	ErrInvalidTitle          = errors.New("invalid_title")
	ErrInvalidEmploymentType = errors.New("invalid_employment_type")
	ErrInvalidStatus         = errors.New("invalid_status")
	ErrNotFound              = errors.New("job_not_found")
)
