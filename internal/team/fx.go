package team

import (
	"github.com/hirelane/hirelane/internal/team/service"
	"go.uber.org/fx"
)

var Module = fx.Module("team.service",
	fx.Provide(service.New),
)
