package seed

import (
	"time"

	applicantdomain "github.com/hirelane/hirelane/internal/applicant/domain"
	billingdomain "github.com/hirelane/hirelane/internal/billing/domain"
	"github.com/hirelane/hirelane/internal/clock"
	"github.com/hirelane/hirelane/internal/config"
	jobdomain "github.com/hirelane/hirelane/internal/job/domain"
	meetingdomain "github.com/hirelane/hirelane/internal/meeting/domain"
	"github.com/hirelane/hirelane/internal/store"
	teamdomain "github.com/hirelane/hirelane/internal/team/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Ensure populates an empty store with the demo workspace. It is idempotent:
// a store that already holds data is left untouched.
func Ensure(cfg config.Config, log *zap.Logger, s *store.Store, clk clock.Clock) error {
	if !cfg.SeedDemoData {
		return nil
	}

	seeded := false
	err := s.Update(func(st *store.State) error {
		if !st.Empty() {
			return nil
		}
		*st = Fixtures(clk.Now())
		seeded = true
		return nil
	})
	if err != nil {
		return err
	}

	if seeded {
		log.Named("seed").Info("demo workspace seeded")
	}
	return nil
}

// Fixtures builds the demo workspace relative to now: three postings, their
// applicants, the four system roles, a small team, billing history, and a
// handful of interviews. Applicant counts on the jobs match the applicant
// collection by construction.
func Fixtures(now time.Time) store.State {
	ago := func(d time.Duration) time.Time { return now.Add(-d) }
	ahead := func(d time.Duration) time.Time { return now.Add(d) }

	jobs := []*jobdomain.Job{
		{
			ID:              "job_1",
			Title:           "Senior Frontend Engineer",
			Department:      "Engineering",
			Location:        "Remote",
			EmploymentType:  jobdomain.FullTime,
			Description:     "Lead frontend initiatives and ship high-quality UI.",
			Requirements:    []string{"React", "TypeScript", "Accessibility"},
			Status:          jobdomain.StatusPublished,
			ApplicantsCount: 4,
			CreatedAt:       ago(20 * 24 * time.Hour),
			UpdatedAt:       ago(2 * time.Hour),
		},
		{
			ID:              "job_2",
			Title:           "Product Designer",
			Department:      "Design",
			Location:        "San Francisco, CA",
			EmploymentType:  jobdomain.FullTime,
			Description:     "Design delightful, accessible product experiences.",
			Requirements:    []string{"Figma", "User Research", "Prototyping"},
			Status:          jobdomain.StatusDraft,
			ApplicantsCount: 1,
			CreatedAt:       ago(10 * 24 * time.Hour),
			UpdatedAt:       ago(10 * time.Hour),
		},
		{
			ID:              "job_3",
			Title:           "Customer Success Manager",
			Department:      "Operations",
			Location:        "Austin, TX",
			EmploymentType:  jobdomain.FullTime,
			Description:     "Drive adoption and ensure customer happiness.",
			Requirements:    []string{"Communication", "SaaS", "Problem Solving"},
			Status:          jobdomain.StatusPublished,
			ApplicantsCount: 2,
			CreatedAt:       ago(35 * 24 * time.Hour),
			UpdatedAt:       ago(30 * time.Minute),
		},
	}

	// job_1 carries four applicants: three in flight plus one hire kept for
	// reporting history.
	applicants := []*applicantdomain.Applicant{
		{
			ID: "app_1", JobID: "job_1",
			Name: "Alex Johnson", Email: "alex@example.com", Location: "New York, NY",
			Source: "LinkedIn", Stage: applicantdomain.StageNew,
			CreatedAt: ago(24 * time.Hour), UpdatedAt: ago(24 * time.Hour),
		},
		{
			ID: "app_2", JobID: "job_1",
			Name: "Priya Narayanan", Email: "priya@example.com", Location: "Remote",
			Source: "Referral", Stage: applicantdomain.StageReviewed,
			CreatedAt: ago(48 * time.Hour), UpdatedAt: ago(22 * time.Hour),
		},
		{
			ID: "app_3", JobID: "job_1",
			Name: "Miguel Santos", Email: "miguel@example.com", Location: "Madrid, ES",
			Source: "Careers Page", Stage: applicantdomain.StageInterview,
			CreatedAt: ago(12 * time.Hour), UpdatedAt: ago(time.Hour),
		},
		{
			ID: "app_4", JobID: "job_2",
			Name: "Lina Park", Email: "lina@example.com", Location: "San Jose, CA",
			Source: "Dribbble", Stage: applicantdomain.StageNew,
			CreatedAt: ago(8 * time.Hour), UpdatedAt: ago(8 * time.Hour),
		},
		{
			ID: "app_5", JobID: "job_3",
			Name: "Chris Moore", Email: "chris@example.com", Location: "Austin, TX",
			Source: "Indeed", Stage: applicantdomain.StageReviewed,
			CreatedAt: ago(5 * time.Hour), UpdatedAt: ago(45 * time.Minute),
		},
		{
			ID: "app_6", JobID: "job_3",
			Name: "Fatima Zahra", Email: "fatima@example.com", Location: "Remote",
			Source: "Referral", Stage: applicantdomain.StageOffer,
			CreatedAt: ago(72 * time.Hour), UpdatedAt: ago(30 * time.Minute),
		},
		{
			ID: "app_7", JobID: "job_1",
			Name: "Noah Becker", Email: "noah@example.com", Location: "Berlin, DE",
			Source: "Referral", Stage: applicantdomain.StageHired,
			CreatedAt: ago(15 * 24 * time.Hour), UpdatedAt: ago(4 * 24 * time.Hour),
		},
	}

	paid1 := ago(46 * 24 * time.Hour)
	paid2 := ago(16 * 24 * time.Hour)
	invoices := []*billingdomain.Invoice{
		{
			ID: "inv_1001", Number: "INV-1001", Amount: 4900,
			Status:   billingdomain.InvoicePaid,
			IssuedAt: ago(60 * 24 * time.Hour), DueAt: ago(45 * 24 * time.Hour), PaidAt: &paid1,
		},
		{
			ID: "inv_1002", Number: "INV-1002", Amount: 4900,
			Status:   billingdomain.InvoicePaid,
			IssuedAt: ago(30 * 24 * time.Hour), DueAt: ago(15 * 24 * time.Hour), PaidAt: &paid2,
		},
		{
			ID: "inv_1003", Number: "INV-1003", Amount: 4900,
			Status:   billingdomain.InvoiceOpen,
			IssuedAt: ago(24 * time.Hour), DueAt: ahead(14 * 24 * time.Hour),
		},
	}

	payments := []*billingdomain.Payment{
		{
			ID: "pay_1", Amount: 4900, Date: ago(46 * 24 * time.Hour),
			MethodBrand: "Visa", MethodLast4: "4242",
			Status:    billingdomain.PaymentSucceeded,
			InvoiceID: "inv_1001", InvoiceNumber: "INV-1001",
		},
		{
			ID: "pay_2", Amount: 4900, Date: ago(16 * 24 * time.Hour),
			MethodBrand: "Mastercard", MethodLast4: "4444",
			Status:    billingdomain.PaymentSucceeded,
			InvoiceID: "inv_1002", InvoiceNumber: "INV-1002",
		},
		{
			ID: "pay_3", Amount: 4900, Date: ago(2 * 24 * time.Hour),
			MethodBrand: "Visa", MethodLast4: "4242",
			Status: billingdomain.PaymentFailed,
		},
	}

	paymentMethods := []*billingdomain.PaymentMethod{
		{ID: "pm_1", Brand: "Visa", Last4: "4242", ExpMonth: 12, ExpYear: now.Year() + 2, IsDefault: true},
		{ID: "pm_2", Brand: "Mastercard", Last4: "4444", ExpMonth: 9, ExpYear: now.Year() + 3},
	}

	roles := []*teamdomain.Role{
		{
			ID: "role_owner", Name: "Owner", System: true,
			Description: "Full access, including billing and team management.",
			Permissions: grants(teamdomain.PermissionKeys...),
		},
		{
			ID: "role_admin", Name: "Admin", System: true,
			Description: "Manage jobs, applicants, and settings.",
			Permissions: grants(teamdomain.ManageJobs, teamdomain.ManageApplicants, teamdomain.ViewReports, teamdomain.EditSettings),
		},
		{
			ID: "role_recruiter", Name: "Recruiter", System: true,
			Description: "Create jobs and move candidates through pipeline.",
			Permissions: grants(teamdomain.ManageJobs, teamdomain.ManageApplicants, teamdomain.ViewReports),
		},
		{
			ID: "role_reviewer", Name: "Reviewer", System: true,
			Description: "View candidates and leave feedback.",
			Permissions: grants(teamdomain.ManageApplicants, teamdomain.ViewReports),
		},
	}

	lastActive1 := ago(20 * time.Minute)
	lastActive2 := ago(12 * time.Hour)
	members := []*teamdomain.TeamMember{
		{
			ID: "mem_1", Name: "You", Email: "you@example.com",
			RoleID: "role_owner", Status: teamdomain.StatusActive, LastActiveAt: &lastActive1,
		},
		{
			ID: "mem_2", Name: "Dana Kim", Email: "dana@example.com",
			RoleID: "role_admin", Status: teamdomain.StatusActive, LastActiveAt: &lastActive2,
		},
		{
			ID: "mem_3", Name: "Sam Patel", Email: "sam@example.com",
			RoleID: "role_recruiter", Status: teamdomain.StatusInvited,
		},
	}

	meetings := []*meetingdomain.Meeting{
		{
			ID: "meet_1", ApplicantID: "app_3", JobID: "job_1",
			Type: meetingdomain.Technical, Status: meetingdomain.StatusScheduled,
			ScheduledAt: ahead(24 * time.Hour), DurationMins: 60,
			Interviewer: "Dana Kim", LocationOrURL: "Zoom https://zoom.us/j/123456",
			Notes:     "Focus on React performance and TS.",
			CreatedAt: ago(35 * time.Minute), UpdatedAt: ago(35 * time.Minute),
		},
		{
			ID: "meet_2", ApplicantID: "app_2", JobID: "job_1",
			Type: meetingdomain.PhoneScreen, Status: meetingdomain.StatusCompleted,
			ScheduledAt: ago(2 * 24 * time.Hour), DurationMins: 30,
			Interviewer: "You", LocationOrURL: "Phone",
			Notes:     "Good communicator.",
			CreatedAt: ago(49 * time.Hour), UpdatedAt: ago(25 * time.Hour),
		},
		{
			ID: "meet_3", ApplicantID: "app_6", JobID: "job_3",
			Type: meetingdomain.Offer, Status: meetingdomain.StatusScheduled,
			ScheduledAt: ahead(48 * time.Hour), DurationMins: 45,
			Interviewer: "You", LocationOrURL: "Google Meet",
			CreatedAt: ago(20 * time.Minute), UpdatedAt: ago(20 * time.Minute),
		},
	}

	return store.State{
		Jobs:           jobs,
		Applicants:     applicants,
		Meetings:       meetings,
		Invoices:       invoices,
		Payments:       payments,
		PaymentMethods: paymentMethods,
		Roles:          roles,
		Members:        members,
	}
}

func grants(granted ...teamdomain.PermissionKey) map[teamdomain.PermissionKey]bool {
	perms := teamdomain.BlankPermissions()
	for _, key := range granted {
		perms[key] = true
	}
	return perms
}

var Module = fx.Module("seed",
	fx.Invoke(Ensure),
)
