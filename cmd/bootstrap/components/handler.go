package components

import (
	"petcare-booking/internal/handler"
	"petcare-booking/internal/handler/api"
	"petcare-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPetHandler,
		api.NewCatalogHandler,
		api.NewBookingHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
