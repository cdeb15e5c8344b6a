package components

import (
	"housnkuh/internal/infra/db"
	"housnkuh/internal/infra/readstore"
	"housnkuh/internal/infra/uow"
	"housnkuh/internal/usecase/queries"
	"housnkuh/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUnitReadStore,
			fx.As(new(queries.UnitReadStore)),
		),
		fx.Annotate(
			readstore.NewContractReadStore,
			fx.As(new(queries.ContractReadStore)),
		),
		fx.Annotate(
			readstore.NewVendorReadStore,
			fx.As(new(queries.VendorReadStore)),
		),
		fx.Annotate(
			readstore.NewSettingsReadStore,
			fx.As(new(queries.SettingsReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
		func(u shared.UnitOfWork) shared.CommandReads {
			return u.CommandReads()
		},
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
