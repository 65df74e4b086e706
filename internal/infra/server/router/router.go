// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/integration/entrypoint/controller"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	transactionController  *controller.TransactionController
	incomeSourceController *controller.IncomeSourceController
	categoryController     *controller.CategoryController
	budgetGoalController   *controller.BudgetGoalController
	savingsGoalController  *controller.SavingsGoalController
	dashboardController    *controller.DashboardController
	reportController       *controller.ReportController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	incomeSourceController *controller.IncomeSourceController,
	categoryController *controller.CategoryController,
	budgetGoalController *controller.BudgetGoalController,
	savingsGoalController *controller.SavingsGoalController,
	dashboardController *controller.DashboardController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		transactionController:  transactionController,
		incomeSourceController: incomeSourceController,
		categoryController:     categoryController,
		budgetGoalController:   budgetGoalController,
		savingsGoalController:  savingsGoalController,
		dashboardController:    dashboardController,
		reportController:       reportController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Income source routes (require authentication)
		if r.incomeSourceController != nil && r.authMiddleware != nil {
			sources := v1.Group("/income-sources")
			sources.Use(r.authMiddleware.Authenticate())
			{
				sources.GET("", r.incomeSourceController.List)
				sources.POST("", r.incomeSourceController.Create)
				sources.PATCH("/:id", r.incomeSourceController.Update)
				sources.DELETE("/:id", r.incomeSourceController.Delete)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		// Budget goal routes (require authentication)
		if r.budgetGoalController != nil && r.authMiddleware != nil {
			budgetGoals := v1.Group("/budget-goals")
			budgetGoals.Use(r.authMiddleware.Authenticate())
			{
				budgetGoals.GET("", r.budgetGoalController.List)
				budgetGoals.POST("", r.budgetGoalController.Create)
				budgetGoals.GET("/:id/progress", r.budgetGoalController.GetProgress)
				budgetGoals.PATCH("/:id", r.budgetGoalController.Update)
				budgetGoals.DELETE("/:id", r.budgetGoalController.Delete)
			}
		}

		// Savings goal routes (require authentication)
		if r.savingsGoalController != nil && r.authMiddleware != nil {
			savingsGoals := v1.Group("/savings-goals")
			savingsGoals.Use(r.authMiddleware.Authenticate())
			{
				savingsGoals.GET("", r.savingsGoalController.List)
				savingsGoals.POST("", r.savingsGoalController.Create)
				savingsGoals.POST("/:id/contribute", r.savingsGoalController.Contribute)
				savingsGoals.PATCH("/:id", r.savingsGoalController.Update)
				savingsGoals.DELETE("/:id", r.savingsGoalController.Delete)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("", r.dashboardController.GetOverview)
			}
		}

		// Report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("", r.reportController.Generate)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
