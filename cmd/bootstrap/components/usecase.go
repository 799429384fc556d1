package components

import (
	"course-marketplace/internal/pkg/clock"
	"course-marketplace/internal/usecase"
	"course-marketplace/internal/usecase/commands"
	"course-marketplace/internal/usecase/queries"

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
	commands.NewCertificateIssuer,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCheckoutUseCase,
		commands.NewApprovalUseCase,
		commands.NewCouponUseCase,
		commands.NewProgressUseCase,
		commands.NewPayoutUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTransactionQueries,
		queries.NewCouponQueries,
		queries.NewProgressQueries,
		queries.NewCertificateQueries,
		queries.NewPayoutQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
