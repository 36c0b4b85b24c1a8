package job

import (
	"github.com/hirelane/hirelane/internal/job/service"
	"go.uber.org/fx"
)

var Module = fx.Module("job.service",
	fx.Provide(service.New),
)
