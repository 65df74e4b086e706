// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/usecase/savingsgoal"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// SavingsGoalController handles savings goal endpoints.
type SavingsGoalController struct {
	createUseCase     *savingsgoal.CreateSavingsGoalUseCase
	listUseCase       *savingsgoal.ListSavingsGoalsUseCase
	updateUseCase     *savingsgoal.UpdateSavingsGoalUseCase
	contributeUseCase *savingsgoal.ContributeSavingsGoalUseCase
	deleteUseCase     *savingsgoal.DeleteSavingsGoalUseCase
}

// NewSavingsGoalController creates a new savings goal controller instance.
func NewSavingsGoalController(
	createUseCase *savingsgoal.CreateSavingsGoalUseCase,
	listUseCase *savingsgoal.ListSavingsGoalsUseCase,
	updateUseCase *savingsgoal.UpdateSavingsGoalUseCase,
	contributeUseCase *savingsgoal.ContributeSavingsGoalUseCase,
	deleteUseCase *savingsgoal.DeleteSavingsGoalUseCase,
) *SavingsGoalController {
	return &SavingsGoalController{
		createUseCase:     createUseCase,
		listUseCase:       listUseCase,
		updateUseCase:     updateUseCase,
		contributeUseCase: contributeUseCase,
		deleteUseCase:     deleteUseCase,
	}
}

// Create handles POST /savings-goals requests.
func (c *SavingsGoalController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateSavingsGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingSavingsGoalFields),
		})
		return
	}

	input := savingsgoal.CreateSavingsGoalInput{
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: decimal.NewFromFloat(req.TargetAmount),
	}

	if req.TargetDate != nil && *req.TargetDate != "" {
		targetDate, err := time.Parse("2006-01-02", *req.TargetDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid target_date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		input.TargetDate = &targetDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSavingsGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSavingsGoalResponse(output.Goal))
}

// List handles GET /savings-goals requests.
func (c *SavingsGoalController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), savingsgoal.ListSavingsGoalsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleSavingsGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingsGoalListResponse(output))
}

// Update handles PATCH /savings-goals/:id requests.
func (c *SavingsGoalController) Update(ctx *gin.Context) {
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
			Error: "Invalid savings goal ID format",
		})
		return
	}

	var req dto.UpdateSavingsGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := savingsgoal.UpdateSavingsGoalInput{
		UserID:          userID,
		GoalID:          goalID,
		Name:            req.Name,
		ClearTargetDate: req.ClearTargetDate,
	}

	if req.TargetAmount != nil {
		amount := decimal.NewFromFloat(*req.TargetAmount)
		input.TargetAmount = &amount
	}

	if req.TargetDate != nil && *req.TargetDate != "" {
		targetDate, err := time.Parse("2006-01-02", *req.TargetDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid target_date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		input.TargetDate = &targetDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSavingsGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingsGoalResponse(output.Goal))
}

// Contribute handles POST /savings-goals/:id/contribute requests.
// Negative amounts withdraw; the balance can never go below zero.
func (c *SavingsGoalController) Contribute(ctx *gin.Context) {
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
			Error: "Invalid savings goal ID format",
		})
		return
	}

	var req dto.ContributeSavingsGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingSavingsGoalFields),
		})
		return
	}

	input := savingsgoal.ContributeSavingsGoalInput{
		UserID: userID,
		GoalID: goalID,
		Amount: decimal.NewFromFloat(req.Amount),
	}

	output, err := c.contributeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSavingsGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingsGoalResponse(output.Goal))
}

// Delete handles DELETE /savings-goals/:id requests.
func (c *SavingsGoalController) Delete(ctx *gin.Context) {
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
			Error: "Invalid savings goal ID format",
		})
		return
	}

	input := savingsgoal.DeleteSavingsGoalInput{
		UserID: userID,
		GoalID: goalID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleSavingsGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleSavingsGoalError handles savings goal errors and returns appropriate HTTP responses.
func (c *SavingsGoalController) handleSavingsGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.SavingsGoalError
	if errors.As(err, &goalErr) {
		statusCode := c.getStatusCodeForSavingsGoalError(goalErr.Code)
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

// getStatusCodeForSavingsGoalError maps savings goal error codes to HTTP status codes.
func (c *SavingsGoalController) getStatusCodeForSavingsGoalError(code domainerror.SavingsGoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeSavingsGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedSavingsGoalAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeSavingsGoalNameRequired,
		domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeNegativeCurrentAmount,
		domainerror.ErrCodeMissingSavingsGoalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
