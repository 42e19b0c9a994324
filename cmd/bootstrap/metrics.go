package bootstrap

import (
	"reservation-book/internal/infra/metrics"
	"reservation-book/internal/usecase/commands"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewMetrics,
		func(m *metrics.Metrics) commands.OutcomeRecorder { return m },
	),
)
