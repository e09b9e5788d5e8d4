package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/audit"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/cache"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/config"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/events"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/handlers"
	infraRepo "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/infra/repository"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/middleware"
	ucAppointment "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/usecase/appointment"
	ucClient "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/usecase/client"
	ucCreditSale "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/usecase/creditsale"
	ucReport "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/usecase/report"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	clientRepo := infraRepo.NewClientGormRepository(db)
	creditSaleRepo := infraRepo.NewCreditSaleGormRepository(db)
	reportRepo := infraRepo.NewReportGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	bus := events.New()

	reportCache := cache.New(cfg.RedisURL, cfg.ReportCacheTTL)

	// Qualquer mudança no razão (ou num cliente) invalida o cache
	// do relatório inteiro.
	go func() {
		ledger := bus.Subscribe(events.TopicLedgerChanged)
		clients := bus.Subscribe(events.TopicClientUpdated)
		for {
			select {
			case <-ledger:
				reportCache.Invalidate(context.Background())
			case <-clients:
				reportCache.Invalidate(context.Background())
			}
		}
	}()

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	advanceStatusUC := ucAppointment.NewAdvanceStatus(appointmentRepo, auditDispatcher)
	finalizeUC := ucAppointment.NewFinalize(appointmentRepo, auditDispatcher, bus)

	updateClientUC := ucClient.NewUpdateClient(clientRepo, auditDispatcher, bus)

	createSaleUC := ucCreditSale.NewCreateSale(creditSaleRepo, auditDispatcher, bus)
	payInstallmentUC := ucCreditSale.NewPayInstallment(creditSaleRepo, auditDispatcher, bus)
	refreshOverdueUC := ucCreditSale.NewRefreshOverdue(creditSaleRepo, bus)

	getSummaryUC := ucReport.NewGetSummary(reportRepo, reportCache)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	clientHandler := handlers.NewClientHandler(db, updateClientUC, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(db, advanceStatusUC, finalizeUC, auditDispatcher)
	transactionHandler := handlers.NewTransactionHandler(db, auditDispatcher, bus)
	creditSaleHandler := handlers.NewCreditSaleHandler(
		db,
		createSaleUC,
		payInstallmentUC,
		refreshOverdueUC,
		auditDispatcher,
		bus,
	)
	expenseHandler := handlers.NewExpenseHandler(db, auditDispatcher, bus)
	catalogHandler := handlers.NewCatalogHandler(db)
	settingsHandler := handlers.NewSettingsHandler(db, auditDispatcher)
	reportHandler := handlers.NewReportHandler(getSummaryUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/appointments/:id/status", appointmentHandler.AdvanceStatus)
			secured.POST("/appointments/:id/finalize", appointmentHandler.Finalize)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// TRANSACTIONS
			// ------------------------------
			secured.GET("/transactions", transactionHandler.List)
			secured.POST("/transactions", transactionHandler.Create)
			secured.PATCH("/transactions/:id", transactionHandler.Update)
			secured.DELETE("/transactions/:id", transactionHandler.Delete)

			// ------------------------------
			// CREDIT SALES
			// ------------------------------
			secured.GET("/credit-sales", creditSaleHandler.List)
			secured.POST("/credit-sales", creditSaleHandler.Create)
			secured.GET("/credit-sales/:id", creditSaleHandler.Get)
			secured.DELETE("/credit-sales/:id", creditSaleHandler.Delete)
			secured.POST("/credit-sales/refresh-overdue", creditSaleHandler.RefreshOverdue)
			secured.POST("/installments/:installmentId/pay", creditSaleHandler.PayInstallment)
			secured.GET("/installments/:installmentId/receipt", creditSaleHandler.InstallmentReceipt)

			// ------------------------------
			// EXPENSES
			// ------------------------------
			secured.GET("/expenses", expenseHandler.List)
			secured.POST("/expenses", expenseHandler.Create)
			secured.PATCH("/expenses/:id", expenseHandler.Update)
			secured.DELETE("/expenses/:id", expenseHandler.Delete)

			secured.GET("/expense-categories", expenseHandler.ListCategories)
			secured.POST("/expense-categories", expenseHandler.CreateCategory)
			secured.DELETE("/expense-categories/:id", expenseHandler.DeleteCategory)

			// ------------------------------
			// CATALOG
			// ------------------------------
			secured.GET("/catalog", catalogHandler.List)
			secured.POST("/catalog", catalogHandler.Create)
			secured.PATCH("/catalog/:id", catalogHandler.Update)

			// ------------------------------
			// SETTINGS
			// ------------------------------
			secured.GET("/settings", settingsHandler.Get)
			secured.PATCH("/settings", settingsHandler.Update)

			// ------------------------------
			// REPORTS
			// ------------------------------
			secured.GET("/reports/summary", reportHandler.Summary)
			secured.GET("/reports/summary/export", reportHandler.ExportXLSX)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
