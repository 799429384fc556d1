package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"course-marketplace/internal/domain/user"
	"course-marketplace/internal/handler/api"
	"course-marketplace/internal/handler/middleware"
	"course-marketplace/internal/pkg/config"
	"course-marketplace/internal/pkg/ratelimit"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Checkout     *api.CheckoutHandler
	Transactions *api.TransactionHandler
	Coupons      *api.CouponHandler
	Progress     *api.ProgressHandler
	Certificates *api.CertificateHandler
	Payouts      *api.PayoutHandler
}

type RouterDeps struct {
	Handlers         Handlers
	Auth             *middleware.AuthMiddleware
	CertificateLimit *ratelimit.Limiter
	MetricsGatherer  prometheus.Gatherer
}

func NewRouter(engine *gin.Engine, cfg config.Config, deps RouterDeps) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, deps)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, deps RouterDeps) {
	h := deps.Handlers
	auth := deps.Auth
	adminOnly := auth.RequireRole(user.RoleAdmin)
	payees := auth.RequireRole(user.RoleProfessor, user.RoleAdmin)

	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.MetricsGatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		certificates := apiGroup.Group("/certificates")
		{
			limited := []gin.HandlerFunc{middleware.RateLimitByIP(deps.CertificateLimit)}
			addRoutes(certificates, []route{
				{Method: http.MethodGet, Path: "/validate/:code", Handler: h.Certificates.Validate, Mw: limited},
				{Method: http.MethodGet, Path: "/validate/:code/qr", Handler: h.Certificates.QRCode, Mw: limited},
				{Method: http.MethodGet, Path: "", Handler: h.Certificates.ListMine, Mw: []gin.HandlerFunc{auth.RequireAuth()}},
			})
		}

		authed := apiGroup.Group("")
		authed.Use(auth.RequireAuth())
		{
			addRoutes(authed, []route{
				{Method: http.MethodPost, Path: "/checkout/quote", Handler: h.Checkout.Quote},
				{Method: http.MethodPost, Path: "/checkout/manual", Handler: h.Checkout.SubmitManualPayment},

				{Method: http.MethodGet, Path: "/transactions", Handler: h.Transactions.ListMine},
				{Method: http.MethodGet, Path: "/transactions/:id", Handler: h.Transactions.Get},

				{Method: http.MethodPost, Path: "/coupons/validate", Handler: h.Coupons.Validate},

				{Method: http.MethodGet, Path: "/courses/:id/progress", Handler: h.Progress.Get},
				{Method: http.MethodPost, Path: "/courses/:id/progress/lessons", Handler: h.Progress.RecordLesson},
				{Method: http.MethodPost, Path: "/courses/:id/progress/final-exam", Handler: h.Progress.RecordFinalExam},
				{Method: http.MethodPost, Path: "/courses/:id/progress/quizzes", Handler: h.Progress.RecordQuiz},

				{Method: http.MethodGet, Path: "/payouts/balance", Handler: h.Payouts.Balance, Mw: []gin.HandlerFunc{payees}},
				{Method: http.MethodGet, Path: "/payouts", Handler: h.Payouts.ListMine, Mw: []gin.HandlerFunc{payees}},
				{Method: http.MethodPost, Path: "/payouts", Handler: h.Payouts.Request, Mw: []gin.HandlerFunc{payees}},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(auth.RequireAuth(), adminOnly)
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/transactions", Handler: h.Transactions.ListByStatus},
				{Method: http.MethodPost, Path: "/transactions/:id/approve", Handler: h.Transactions.Approve},
				{Method: http.MethodPost, Path: "/transactions/:id/reject", Handler: h.Transactions.Reject},

				{Method: http.MethodPost, Path: "/coupons", Handler: h.Coupons.Create},
				{Method: http.MethodPatch, Path: "/coupons/:code", Handler: h.Coupons.Update},

				{Method: http.MethodGet, Path: "/payouts", Handler: h.Payouts.ListByStatus},
				{Method: http.MethodPatch, Path: "/payouts/:id", Handler: h.Payouts.UpdateStatus},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
