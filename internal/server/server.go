package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hirelane/hirelane/internal/applicant"
	applicantdomain "github.com/hirelane/hirelane/internal/applicant/domain"
	"github.com/hirelane/hirelane/internal/billing"
	billingdomain "github.com/hirelane/hirelane/internal/billing/domain"
	"github.com/hirelane/hirelane/internal/config"
	"github.com/hirelane/hirelane/internal/job"
	jobdomain "github.com/hirelane/hirelane/internal/job/domain"
	"github.com/hirelane/hirelane/internal/meeting"
	meetingdomain "github.com/hirelane/hirelane/internal/meeting/domain"
	"github.com/hirelane/hirelane/internal/metrics"
	"github.com/hirelane/hirelane/internal/settings"
	settingsdomain "github.com/hirelane/hirelane/internal/settings/domain"
	"github.com/hirelane/hirelane/internal/team"
	teamdomain "github.com/hirelane/hirelane/internal/team/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	job.Module,
	applicant.Module,
	meeting.Module,
	team.Module,
	billing.Module,
	settings.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(registerRoutes),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(metrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Server struct {
	jobSvc       jobdomain.Service
	applicantSvc applicantdomain.Service
	meetingSvc   meetingdomain.Service
	teamSvc      teamdomain.Service
	billingSvc   billingdomain.Service
	settingsSvc  settingsdomain.Service
}

type ServerParams struct {
	fx.In

	JobSvc       jobdomain.Service
	ApplicantSvc applicantdomain.Service
	MeetingSvc   meetingdomain.Service
	TeamSvc      teamdomain.Service
	BillingSvc   billingdomain.Service
	SettingsSvc  settingsdomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		jobSvc:       p.JobSvc,
		applicantSvc: p.ApplicantSvc,
		meetingSvc:   p.MeetingSvc,
		teamSvc:      p.TeamSvc,
		billingSvc:   p.BillingSvc,
		settingsSvc:  p.SettingsSvc,
	}
}

func registerRoutes(s *Server, r *gin.Engine) {
	api := r.Group("/api/v1")

	api.GET("/jobs", s.ListJobs)
	api.POST("/jobs", s.CreateJob)
	api.GET("/jobs/:id", s.GetJob)
	api.PATCH("/jobs/:id/status", s.SetJobStatus)
	api.POST("/jobs/:id/applicants", s.AddApplicant)

	api.GET("/applicants", s.ListApplicants)
	api.PATCH("/applicants/:id/stage", s.MoveApplicantStage)

	api.GET("/meetings", s.ListMeetings)
	api.POST("/meetings", s.CreateMeeting)
	api.POST("/meetings/next-round", s.CreateNextRound)
	api.POST("/meetings/:id/reschedule", s.RescheduleMeeting)
	api.POST("/meetings/:id/complete", s.CompleteMeeting)
	api.POST("/meetings/:id/cancel", s.CancelMeeting)
	api.PATCH("/meetings/:id/status", s.SetMeetingStatus)

	api.GET("/members", s.ListMembers)
	api.POST("/members", s.InviteMember)
	api.POST("/members/:id/resend-invite", s.ResendInvite)
	api.DELETE("/members/:id", s.RemoveMember)
	api.PATCH("/members/:id/role", s.SetMemberRole)
	api.PATCH("/members/:id/status", s.SetMemberStatus)

	api.GET("/roles", s.ListRoles)
	api.POST("/roles", s.AddRole)
	api.PATCH("/roles/:id/permissions", s.UpdateRolePermissions)
	api.DELETE("/roles/:id", s.RemoveRole)

	api.GET("/billing/invoices", s.ListInvoices)
	api.GET("/billing/payments", s.ListPayments)
	api.GET("/billing/methods", s.ListPaymentMethods)
	api.POST("/billing/methods", s.AddPaymentMethod)
	api.POST("/billing/methods/:id/default", s.SetDefaultPaymentMethod)
	api.DELETE("/billing/methods/:id", s.RemovePaymentMethod)

	api.GET("/settings", s.GetSettings)
	api.PATCH("/settings", s.UpdateSettings)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
