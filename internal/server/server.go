package server

import (
	"context"
	"net/http"
	"time"

	"fintrack/internal/auth"
	"fintrack/internal/budget"
	"fintrack/internal/config"
	"fintrack/internal/report"
	"fintrack/internal/transaction"
	"fintrack/internal/user"
	"fintrack/internal/wallet"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	cancel context.CancelFunc
}

// New wires repositories, services and handlers. rdb may be nil, in which
// case reports are not cached.
func New(db *sqlx.DB, cfg *config.Config, rdb *redis.Client) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())

	var reportCache report.Cache = report.NopCache{}
	if rdb != nil {
		reportCache = report.NewRedisCache(rdb, cfg.ReportCacheTTL)
	}

	now := func() time.Time { return time.Now().In(cfg.Location) }

	userHandler := user.NewHandler(user.NewService(user.NewRepository(db), cfg.JWTSecret, cfg.TokenTTL))
	walletHandler := wallet.NewHandler(wallet.NewService(wallet.NewRepository(db), reportCache))
	transactionHandler := transaction.NewHandler(transaction.NewService(transaction.NewRepository(db), reportCache))
	budgetHandler := budget.NewHandler(budget.NewService(budget.NewRepository(db), reportCache, now))
	reportHandler := report.NewHandler(report.NewService(report.NewRepository(db), reportCache, now))

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	apiGroup := router.Group("/api")
	apiGroup.Use(RateLimitMiddleware(NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, 3*time.Minute)))

	public := apiGroup.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
	}

	protected := apiGroup.Group("/")
	protected.Use(auth.AuthMiddleware(cfg.JWTSecret))
	{
		protected.POST("/wallets", walletHandler.CreateWallet)
		protected.GET("/wallets", walletHandler.ListWallets)
		protected.DELETE("/wallets/:id", walletHandler.DeleteWallet)
		protected.POST("/wallets/:id/reconcile", walletHandler.ReconcileWallet)

		protected.POST("/transactions", transactionHandler.CreateTransaction)
		protected.GET("/transactions", transactionHandler.ListTransactions)
		protected.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
		protected.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

		protected.POST("/budgets", budgetHandler.SetBudget)
		protected.GET("/budgets", budgetHandler.ListBudgets)

		protected.GET("/report", reportHandler.GetReport)
	}

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		cancel: cancel,
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()
	return s.http.Shutdown(ctx)
}
