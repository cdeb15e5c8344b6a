package components

import (
	"housnkuh/internal/pkg/clock"
	"housnkuh/internal/usecase"
	"housnkuh/internal/usecase/commands"
	"housnkuh/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRegistrationCommands,
		commands.NewApprovalCommands,
		commands.NewContractCommands,
		commands.NewUnitCommands,
		commands.NewSettingsCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUnitQueries,
		queries.NewContractQueries,
		queries.NewVendorQueries,
		queries.NewSettingsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
	),
)
