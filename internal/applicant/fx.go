package applicant

import (
	"github.com/hirelane/hirelane/internal/applicant/service"
	"go.uber.org/fx"
)

var Module = fx.Module("applicant.service",
	fx.Provide(service.New),
)
