package meeting

import (
	"github.com/hirelane/hirelane/internal/meeting/service"
	"go.uber.org/fx"
)

var Module = fx.Module("meeting.service",
	fx.Provide(service.New),
)
