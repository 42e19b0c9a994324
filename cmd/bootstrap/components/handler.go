package components

import (
	"reservation-book/internal/handler"
	"reservation-book/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewTableHandler,
	),
	fx.Invoke(handler.NewRouter),
)
