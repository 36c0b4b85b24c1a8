package domain

import "time"

type JobStatus string

const (
	StatusDraft     JobStatus = "draft"
	StatusPublished JobStatus = "published"
	StatusClosed    JobStatus = "closed"
)

// Valid reports whether s is a known posting status. Any valid status is
// reachable from any other; publishing is not a forward-only machine.
func (s JobStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusClosed:
		return true
	default:
		return false
	}
}

type EmploymentType string

const (
	FullTime   EmploymentType = "full-time"
	PartTime   EmploymentType = "part-time"
	Contract   EmploymentType = "contract"
	Internship EmploymentType = "internship"
	Temporary  EmploymentType = "temporary"
)

func (t EmploymentType) Valid() bool {
	switch t {
	case FullTime, PartTime, Contract, Internship, Temporary:
		return true
	default:
		return false
	}
}

// Job is a posting in the hiring pipeline. ApplicantsCount is denormalized:
// the applicant service recounts it on every insert rather than incrementing,
// so it always equals the number of applicants referencing the job.
type Job struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Department      string         `json:"department"`
	Location        string         `json:"location"`
	EmploymentType  EmploymentType `json:"employment_type"`
	Description     string         `json:"description"`
	Requirements    []string       `json:"requirements"`
	Status          JobStatus      `json:"status"`
	ApplicantsCount int            `json:"applicants_count"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
