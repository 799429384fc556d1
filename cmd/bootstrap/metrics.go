package bootstrap

import (
	"course-marketplace/internal/infra/metrics"
	"course-marketplace/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetricsRegistry,
		fx.Annotate(
			metrics.NewRecorder,
			fx.As(new(commands.MetricsRecorder)),
		),
	),
)

func NewMetricsRegistry() prometheus.Gatherer {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics.Register(reg)
	return reg
}
