package components

import (
	"course-marketplace/internal/infra/readstore"
	sqlc "course-marketplace/internal/infra/sqlc/generated"
	"course-marketplace/internal/infra/uow"
	"course-marketplace/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are built per transaction by the UnitOfWork.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	fx.Provide(uow.NewPostgresUoW),
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Catalog
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CatalogReadQueries)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CourseReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Transaction
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TransactionReadQueries)),
		),
		fx.Annotate(
			readstore.NewTransactionReadStore,
			fx.As(new(queries.TransactionReadStore)),
		),
		// Coupon
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CouponReadQueries)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		// Progress
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProgressReadQueries)),
		),
		fx.Annotate(
			readstore.NewProgressReadStore,
			fx.As(new(queries.ProgressReadStore)),
		),
		// Certificate
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CertificateReadQueries)),
		),
		fx.Annotate(
			readstore.NewCertificateReadStore,
			fx.As(new(queries.CertificateReadStore)),
			fx.As(new(queries.CertificateLookup)),
		),
		// Payout
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PayoutReadQueries)),
		),
		fx.Annotate(
			readstore.NewPayoutReadStore,
			fx.As(new(queries.PayoutReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
