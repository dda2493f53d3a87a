package components

import (
	"postify/internal/handler"
	"postify/internal/handler/api"
	"postify/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewSubscriberHandler,
		api.NewHolidayHandler,
		api.NewPostHandler,
		api.NewDistributionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
