package domain

import (
	"context"
	"errors"
)

type AddApplicantRequest struct {
	JobID    string
	Name     string
	Email    string
	Location string
	Source   string
}

type ListApplicantsRequest struct {
	// JobID filters the result to a single job when non-empty.
	JobID string
}

type Service interface {
	Add(context.Context, AddApplicantRequest) (Applicant, error)
	MoveStage(ctx context.Context, id string, stage Stage) (Applicant, error)
	List(context.Context, ListApplicantsRequest) ([]Applicant, error)
}

var (
	ErrInvalidStage = errors.New("invalid_stage")
	ErrNotFound     = errors.New("applicant_not_found")
)
