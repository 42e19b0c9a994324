package bootstrap

import (
	"reservation-book/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Infra is what every command needs: configuration, logging and the database.
var Infra = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.PersistenceModule,
)

var Module = fx.Options(
	Infra,
	MetricsModule,
	CacheModule,
	MessagingModule,
	components.UseCaseModule,
	components.HandlerModule,
	fx.Invoke(StartDispatcher),
)
