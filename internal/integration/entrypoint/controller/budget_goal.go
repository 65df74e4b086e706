// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/usecase/budgetgoal"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// BudgetGoalController handles budget goal endpoints.
type BudgetGoalController struct {
	createUseCase   *budgetgoal.CreateBudgetGoalUseCase
	listUseCase     *budgetgoal.ListBudgetGoalsUseCase
	progressUseCase *budgetgoal.GetBudgetGoalProgressUseCase
	updateUseCase   *budgetgoal.UpdateBudgetGoalUseCase
	deleteUseCase   *budgetgoal.DeleteBudgetGoalUseCase
}

// NewBudgetGoalController creates a new budget goal controller instance.
func NewBudgetGoalController(
	createUseCase *budgetgoal.CreateBudgetGoalUseCase,
	listUseCase *budgetgoal.ListBudgetGoalsUseCase,
	progressUseCase *budgetgoal.GetBudgetGoalProgressUseCase,
	updateUseCase *budgetgoal.UpdateBudgetGoalUseCase,
	deleteUseCase *budgetgoal.DeleteBudgetGoalUseCase,
) *BudgetGoalController {
	return &BudgetGoalController{
		createUseCase:   createUseCase,
		listUseCase:     listUseCase,
		progressUseCase: progressUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
	}
}

// Create handles POST /budget-goals requests.
func (c *BudgetGoalController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateBudgetGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	input := budgetgoal.CreateBudgetGoalInput{
		UserID:        userID,
		CategoryID:    categoryID,
		Amount:        decimal.NewFromFloat(req.Amount),
		AlertOnExceed: req.AlertOnExceed,
	}

	if req.Period != "" {
		period := entity.GoalPeriod(req.Period)
		input.Period = &period
	}

	if req.StartDate != "" {
		startDate, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		input.StartDate = startDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetGoalResponse(output.Goal))
}

// List handles GET /budget-goals requests. Each goal is evaluated against the
// period window containing the optional date query parameter, defaulting to today.
func (c *BudgetGoalController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := budgetgoal.ListBudgetGoalsInput{
		UserID: userID,
	}

	if dateStr := ctx.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		input.EvaluationDate = date
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetGoalListResponse(output))
}

// GetProgress handles GET /budget-goals/:id/progress requests.
func (c *BudgetGoalController) GetProgress(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget goal ID format",
		})
		return
	}

	input := budgetgoal.GetBudgetGoalProgressInput{
		UserID: userID,
		GoalID: goalID,
	}

	if dateStr := ctx.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		input.EvaluationDate = date
	}

	output, err := c.progressUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetGoalError(ctx, err)
		return
	}

	response := dto.ToBudgetGoalResponse(output.Goal)
	progress := dto.ToGoalProgressResponse(output.Progress)
	response.Progress = &progress
	ctx.JSON(http.StatusOK, response)
}

// Update handles PATCH /budget-goals/:id requests.
func (c *BudgetGoalController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget goal ID format",
		})
		return
	}

	var req dto.UpdateBudgetGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := budgetgoal.UpdateBudgetGoalInput{
		UserID:        userID,
		GoalID:        goalID,
		AlertOnExceed: req.AlertOnExceed,
	}

	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	if req.Period != nil {
		period := entity.GoalPeriod(*req.Period)
		input.Period = &period
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetGoalResponse(output.Goal))
}

// Delete handles DELETE /budget-goals/:id requests.
func (c *BudgetGoalController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget goal ID format",
		})
		return
	}

	input := budgetgoal.DeleteBudgetGoalInput{
		UserID: userID,
		GoalID: goalID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleBudgetGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleBudgetGoalError handles budget goal errors and returns appropriate HTTP responses.
func (c *BudgetGoalController) handleBudgetGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.BudgetGoalError
	if errors.As(err, &goalErr) {
		statusCode := c.getStatusCodeForBudgetGoalError(goalErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetGoalError maps budget goal error codes to HTTP status codes.
func (c *BudgetGoalController) getStatusCodeForBudgetGoalError(code domainerror.BudgetGoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetGoalNotFound,
		domainerror.ErrCodeGoalCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedGoalAccess,
		domainerror.ErrCodeGoalCategoryNotOwned:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidGoalAmount,
		domainerror.ErrCodeInvalidGoalPeriod,
		domainerror.ErrCodeMissingGoalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
