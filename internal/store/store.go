package store

import (
	"sync"

	applicantdomain "github.com/hirelane/hirelane/internal/applicant/domain"
	billingdomain "github.com/hirelane/hirelane/internal/billing/domain"
	jobdomain "github.com/hirelane/hirelane/internal/job/domain"
	meetingdomain "github.com/hirelane/hirelane/internal/meeting/domain"
	teamdomain "github.com/hirelane/hirelane/internal/team/domain"
	"go.uber.org/fx"
)

// State is the shared collection set. It is a passive container: every
// invariant (applicant counts, default payment method, role guards) is owned
// by the service mutating it, never by the store itself.
type State struct {
	Jobs           []*jobdomain.Job
	Applicants     []*applicantdomain.Applicant
	Meetings       []*meetingdomain.Meeting
	Invoices       []*billingdomain.Invoice
	Payments       []*billingdomain.Payment
	PaymentMethods []*billingdomain.PaymentMethod
	Roles          []*teamdomain.Role
	Members        []*teamdomain.TeamMember
}

// Store serializes access to a single in-memory State. Services run every
// mutation inside one Update call so read-modify-write sequences on derived
// fields cannot interleave.
type Store struct {
	mu    sync.RWMutex
	state State
}

func New() *Store {
	return &Store{}
}

// Update runs fn with exclusive access to the state. The returned error is
// fn's; a non-nil error does not roll anything back, so services must not
// mutate before their preconditions pass.
func (s *Store) Update(fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.state)
}

// View runs fn with shared read access to the state. fn must not retain or
// mutate anything it reads; copy out what you need.
func (s *Store) View(fn func(*State) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&s.state)
}

func (st *State) FindJob(id string) *jobdomain.Job {
	for _, j := range st.Jobs {
		if j.ID == id {
			return j
		}
	}
	return nil
}

func (st *State) FindApplicant(id string) *applicantdomain.Applicant {
	for _, a := range st.Applicants {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// CountApplicants recounts the applicants referencing a job. Counting beats
// increment/decrement bookkeeping: the derived Job.ApplicantsCount cannot
// drift if every writer recounts.
func (st *State) CountApplicants(jobID string) int {
	n := 0
	for _, a := range st.Applicants {
		if a.JobID == jobID {
			n++
		}
	}
	return n
}

func (st *State) FindMeeting(id string) *meetingdomain.Meeting {
	for _, m := range st.Meetings {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (st *State) FindRole(id string) *teamdomain.Role {
	for _, r := range st.Roles {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (st *State) FindMember(id string) *teamdomain.TeamMember {
	for _, m := range st.Members {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (st *State) FindPaymentMethod(id string) *billingdomain.PaymentMethod {
	for _, pm := range st.PaymentMethods {
		if pm.ID == id {
			return pm
		}
	}
	return nil
}

// Empty reports whether nothing has been stored yet; seeding keys off it.
func (st *State) Empty() bool {
	return len(st.Jobs) == 0 &&
		len(st.Applicants) == 0 &&
		len(st.Meetings) == 0 &&
		len(st.Invoices) == 0 &&
		len(st.Payments) == 0 &&
		len(st.PaymentMethods) == 0 &&
		len(st.Roles) == 0 &&
		len(st.Members) == 0
}

var Module = fx.Module("store",
	fx.Provide(New),
)
