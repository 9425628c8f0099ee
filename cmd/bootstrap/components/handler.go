package components

import (
	"zenithstays/internal/handler"
	"zenithstays/internal/handler/api"
	"zenithstays/internal/handler/middleware"
	"zenithstays/internal/handler/ws"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBroadcastHandler,
		ws.NewHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
