package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Mikailhassan/bursary-aden/internal/app/models/dto"
	"github.com/Mikailhassan/bursary-aden/internal/app/services"
	"github.com/Mikailhassan/bursary-aden/internal/middleware"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/apperrors"
)

// BursaryController handles bursary application endpoints
type BursaryController struct {
	bursaryService services.BursaryService
	logger         zerolog.Logger
}

// NewBursaryController creates a new BursaryController
func NewBursaryController(bursaryService services.BursaryService, logger zerolog.Logger) *BursaryController {
	return &BursaryController{
		bursaryService: bursaryService,
		logger:         logger,
	}
}

// Apply submits a bursary application for the authenticated user
// @Summary Apply for a bursary
// @Description Creates a bursary application for the authenticated user with an optional supporting document
// @Tags bursary
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param familyIncome formData number true "Family income"
// @Param reason formData string true "Reason for applying"
// @Param supportingDocument formData file false "Supporting document (png/jpg/jpeg/gif/pdf)"
// @Success 201 {object} dto.BursaryApplicationResponse "Application created"
// @Failure 400 {object} dto.ErrorResponse "Validation error or duplicate application"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /apply-bursary [post]
func (c *BursaryController) Apply(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.ApplyBursaryRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid bursary application payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	supportingDocument, _ := ctx.FormFile("supportingDocument")

	app, err := c.bursaryService.Apply(ctx.Request.Context(), userID, &req, supportingDocument)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to create bursary application")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewBursaryApplicationResponse(app))
}

// UpdateStatus changes the status of a bursary application
// @Summary Update bursary application status
// @Description Moves the application identified by admission number to the given status and notifies the applicant
// @Tags bursary
// @Accept json
// @Produce json
// @Param request body dto.UpdateBursaryStatusRequest true "Status update"
// @Success 200 {object} dto.SuccessResponse "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /update-bursary-status [post]
func (c *BursaryController) UpdateStatus(ctx *gin.Context) {
	var req dto.UpdateBursaryStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid bursary status update payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	app, err := c.bursaryService.UpdateStatus(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("admissionNumber", req.AdmissionNumber).Msg("Failed to update bursary status")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: fmt.Sprintf("Application status updated to %s", app.Status),
	})
}

// GetStatus returns the authenticated user's application status and history
// @Summary Get bursary application status
// @Tags bursary
// @Produce json
// @Security BearerAuth
// @Param admission_number path string true "Admission number"
// @Success 200 {object} dto.BursaryStatusResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Admission number belongs to another user"
// @Router /get-bursary-status/{admission_number} [get]
func (c *BursaryController) GetStatus(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	admissionNumber := ctx.Param("admission_number")

	status, err := c.bursaryService.GetStatus(ctx.Request.Context(), userID, admissionNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, status)
}
