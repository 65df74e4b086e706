// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/usecase/incomesource"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// IncomeSourceController handles income source endpoints.
type IncomeSourceController struct {
	createUseCase *incomesource.CreateIncomeSourceUseCase
	listUseCase   *incomesource.ListIncomeSourcesUseCase
	updateUseCase *incomesource.UpdateIncomeSourceUseCase
	deleteUseCase *incomesource.DeleteIncomeSourceUseCase
}

// NewIncomeSourceController creates a new income source controller instance.
func NewIncomeSourceController(
	createUseCase *incomesource.CreateIncomeSourceUseCase,
	listUseCase *incomesource.ListIncomeSourcesUseCase,
	updateUseCase *incomesource.UpdateIncomeSourceUseCase,
	deleteUseCase *incomesource.DeleteIncomeSourceUseCase,
) *IncomeSourceController {
	return &IncomeSourceController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /income-sources requests.
func (c *IncomeSourceController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateIncomeSourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeIncomeSourceNameRequired),
		})
		return
	}

	input := incomesource.CreateIncomeSourceInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleIncomeSourceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeSourceResponse(output.Source))
}

// List handles GET /income-sources requests.
func (c *IncomeSourceController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), incomesource.ListIncomeSourcesInput{
		UserID: userID,
	})
	if err != nil {
		c.handleIncomeSourceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeSourceListResponse(output.Sources))
}

// Update handles PATCH /income-sources/:id requests.
func (c *IncomeSourceController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	sourceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid income source ID format",
		})
		return
	}

	var req dto.UpdateIncomeSourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := incomesource.UpdateIncomeSourceInput{
		UserID:      userID,
		SourceID:    sourceID,
		Name:        req.Name,
		Description: req.Description,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleIncomeSourceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeSourceResponse(output.Source))
}

// Delete handles DELETE /income-sources/:id requests.
// Transactions referencing the source keep their history with a nulled reference.
func (c *IncomeSourceController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	sourceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid income source ID format",
		})
		return
	}

	input := incomesource.DeleteIncomeSourceInput{
		UserID:   userID,
		SourceID: sourceID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleIncomeSourceError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleIncomeSourceError handles income source errors and returns appropriate HTTP responses.
func (c *IncomeSourceController) handleIncomeSourceError(ctx *gin.Context, err error) {
	var srcErr *domainerror.IncomeSourceError
	if errors.As(err, &srcErr) {
		statusCode := c.getStatusCodeForIncomeSourceError(srcErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: srcErr.Message,
			Code:  string(srcErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForIncomeSourceError maps income source error codes to HTTP status codes.
func (c *IncomeSourceController) getStatusCodeForIncomeSourceError(code domainerror.IncomeSourceErrorCode) int {
	switch code {
	case domainerror.ErrCodeIncomeSourceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedSourceAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeIncomeSourceNameRequired,
		domainerror.ErrCodeIncomeSourceNameTooLong:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
