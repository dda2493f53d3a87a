package components

import (
	repo_impl "postify/internal/infra/repository"
	"postify/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewSubscriberRepository,
			fx.As(new(usecase.SubscriberRepository)),
		),
		fx.Annotate(
			repo_impl.NewHolidayRepository,
			fx.As(new(usecase.HolidayRepository)),
		),
	),
)
