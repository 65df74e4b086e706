// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/config"
	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/auth"
	"github.com/budgetwise/backend/internal/application/usecase/budgetgoal"
	"github.com/budgetwise/backend/internal/application/usecase/category"
	"github.com/budgetwise/backend/internal/application/usecase/dashboard"
	"github.com/budgetwise/backend/internal/application/usecase/incomesource"
	"github.com/budgetwise/backend/internal/application/usecase/report"
	"github.com/budgetwise/backend/internal/application/usecase/savingsgoal"
	"github.com/budgetwise/backend/internal/application/usecase/transaction"
	"github.com/budgetwise/backend/internal/infra/server/router"
	"github.com/budgetwise/backend/internal/integration/adapters"
	"github.com/budgetwise/backend/internal/integration/email"
	"github.com/budgetwise/backend/internal/integration/email/templates"
	"github.com/budgetwise/backend/internal/integration/entrypoint/controller"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
	"github.com/budgetwise/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	sourceRepo := persistence.NewIncomeSourceRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	budgetGoalRepo := persistence.NewBudgetGoalRepository(db)
	savingsGoalRepo := persistence.NewSavingsGoalRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	emailService := email.NewService(emailQueueRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(
		transactionRepo, sourceRepo, categoryRepo, budgetGoalRepo, userRepo, emailService)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(
		transactionRepo, sourceRepo, categoryRepo, budgetGoalRepo, userRepo, emailService)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create income source use cases
	createIncomeSourceUseCase := incomesource.NewCreateIncomeSourceUseCase(sourceRepo)
	listIncomeSourcesUseCase := incomesource.NewListIncomeSourcesUseCase(sourceRepo)
	updateIncomeSourceUseCase := incomesource.NewUpdateIncomeSourceUseCase(sourceRepo)
	deleteIncomeSourceUseCase := incomesource.NewDeleteIncomeSourceUseCase(sourceRepo)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo, transactionRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create budget goal use cases
	createBudgetGoalUseCase := budgetgoal.NewCreateBudgetGoalUseCase(budgetGoalRepo, categoryRepo)
	listBudgetGoalsUseCase := budgetgoal.NewListBudgetGoalsUseCase(budgetGoalRepo, categoryRepo, transactionRepo)
	budgetGoalProgressUseCase := budgetgoal.NewGetBudgetGoalProgressUseCase(budgetGoalRepo, transactionRepo)
	updateBudgetGoalUseCase := budgetgoal.NewUpdateBudgetGoalUseCase(budgetGoalRepo)
	deleteBudgetGoalUseCase := budgetgoal.NewDeleteBudgetGoalUseCase(budgetGoalRepo)

	// Create savings goal use cases
	createSavingsGoalUseCase := savingsgoal.NewCreateSavingsGoalUseCase(savingsGoalRepo)
	listSavingsGoalsUseCase := savingsgoal.NewListSavingsGoalsUseCase(savingsGoalRepo)
	updateSavingsGoalUseCase := savingsgoal.NewUpdateSavingsGoalUseCase(savingsGoalRepo)
	contributeSavingsGoalUseCase := savingsgoal.NewContributeSavingsGoalUseCase(savingsGoalRepo)
	deleteSavingsGoalUseCase := savingsgoal.NewDeleteSavingsGoalUseCase(savingsGoalRepo)

	// Create aggregation use cases
	overviewUseCase := dashboard.NewGetOverviewUseCase(transactionRepo, sourceRepo, categoryRepo)
	generateReportUseCase := report.NewGenerateReportUseCase(transactionRepo, sourceRepo, categoryRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	incomeSourceController := controller.NewIncomeSourceController(
		createIncomeSourceUseCase,
		listIncomeSourcesUseCase,
		updateIncomeSourceUseCase,
		deleteIncomeSourceUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	budgetGoalController := controller.NewBudgetGoalController(
		createBudgetGoalUseCase,
		listBudgetGoalsUseCase,
		budgetGoalProgressUseCase,
		updateBudgetGoalUseCase,
		deleteBudgetGoalUseCase,
	)

	savingsGoalController := controller.NewSavingsGoalController(
		createSavingsGoalUseCase,
		listSavingsGoalsUseCase,
		updateSavingsGoalUseCase,
		contributeSavingsGoalUseCase,
		deleteSavingsGoalUseCase,
	)

	dashboardController := controller.NewDashboardController(overviewUseCase)
	reportController := controller.NewReportController(generateReportUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, cfg.RateLimit.WindowDuration)
	} else {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, cfg.RateLimit.MaxAttempts, cfg.RateLimit.WindowDuration)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		incomeSourceController,
		categoryController,
		budgetGoalController,
		savingsGoalController,
		dashboardController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	// Create email worker
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize email templates: %w", err)
	}

	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		sender = email.NewMockEmailSender()
	}
	worker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: worker,
	}, nil
}
