package components

import (
	"course-marketplace/internal/handler"
	"course-marketplace/internal/handler/api"
	"course-marketplace/internal/handler/middleware"
	"course-marketplace/internal/pkg/ratelimit"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		api.NewTransactionHandler,
		api.NewCouponHandler,
		api.NewProgressHandler,
		api.NewCertificateHandler,
		api.NewPayoutHandler,
		middleware.NewAuthMiddleware,
		newRouterDeps,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Checkout     *api.CheckoutHandler
	Transactions *api.TransactionHandler
	Coupons      *api.CouponHandler
	Progress     *api.ProgressHandler
	Certificates *api.CertificateHandler
	Payouts      *api.PayoutHandler
	Auth         *middleware.AuthMiddleware
	Limiter      *ratelimit.Limiter
	Gatherer     prometheus.Gatherer
}

func newRouterDeps(p handlerParams) handler.RouterDeps {
	return handler.RouterDeps{
		Handlers: handler.Handlers{
			Checkout:     p.Checkout,
			Transactions: p.Transactions,
			Coupons:      p.Coupons,
			Progress:     p.Progress,
			Certificates: p.Certificates,
			Payouts:      p.Payouts,
		},
		Auth:             p.Auth,
		CertificateLimit: p.Limiter,
		MetricsGatherer:  p.Gatherer,
	}
}
