package components

import (
	"housnkuh/internal/handler"
	"housnkuh/internal/handler/api"
	"housnkuh/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewVendorHandler,
		api.NewUnitHandler,
		api.NewContractHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
