package components

import (
	"zenithstays/internal/infra/readstore"
	"zenithstays/internal/infra/repository"
	"zenithstays/internal/usecase/commands"
	"zenithstays/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewBroadcastRepository,
			fx.As(new(commands.BroadcastRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			readstore.NewBroadcastReadStore,
			fx.As(new(queries.BroadcastReadStore)),
		),
		fx.Annotate(
			readstore.NewListingReadStore,
			fx.As(new(queries.ListingReadStore)),
			fx.As(new(commands.OwnerDirectory)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewUserSnapshots,
			fx.As(new(commands.UserReads)),
		),
	),
)
