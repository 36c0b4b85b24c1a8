package domain

import "time"

type Stage string

const (
	StageNew       Stage = "new"
	StageReviewed  Stage = "reviewed"
	StageInterview Stage = "interview"
	StageOffer     Stage = "offer"
	StageHired     Stage = "hired"
	StageRejected  Stage = "rejected"
)

// Stages lists every pipeline stage in presentational order.
var Stages = []Stage{StageNew, StageReviewed, StageInterview, StageOffer, StageHired, StageRejected}

func (s Stage) Valid() bool {
	for _, stage := range Stages {
		if s == stage {
			return true
		}
	}
	return false
}

// stageTransitions is the pipeline transition table. The pipeline is
// deliberately permissive: a recruiter may move an applicant from any stage
// to any other, including back to "new". Tightening the pipeline later is a
// data change here, not a rewrite.
var stageTransitions = func() map[Stage]map[Stage]bool {
	table := make(map[Stage]map[Stage]bool, len(Stages))
	for _, from := range Stages {
		table[from] = make(map[Stage]bool, len(Stages))
		for _, to := range Stages {
			table[from][to] = true
		}
	}
	return table
}()

// TransitionAllowed reports whether the pipeline permits moving an applicant
// from one stage to another.
func TransitionAllowed(from, to Stage) bool {
	return stageTransitions[from][to]
}

type Applicant struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Location  string    `json:"location"`
	Source    string    `json:"source"`
	Stage     Stage     `json:"stage"`
	ResumeURL string    `json:"resume_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
