package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Mikailhassan/bursary-aden/internal/app/models/dto"
	"github.com/Mikailhassan/bursary-aden/internal/app/services"
	"github.com/Mikailhassan/bursary-aden/internal/middleware"
)

// ApplicantController handles applicant submission and management endpoints
type ApplicantController struct {
	applicantService services.ApplicantService
	logger           zerolog.Logger
}

// NewApplicantController creates a new ApplicantController
func NewApplicantController(applicantService services.ApplicantService, logger zerolog.Logger) *ApplicantController {
	return &ApplicantController{
		applicantService: applicantService,
		logger:           logger,
	}
}

// parseApplicantID reads the :id path parameter. Responds 404 and returns
// false when the parameter is not a number, matching the route contract.
func parseApplicantID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")))
		return 0, false
	}
	return id, true
}

// Apply handles a bursary applicant submission
// @Summary Submit an applicant record
// @Description Validates the applicant fields, stores accepted document uploads and creates the record with status Pending
// @Tags applicants
// @Accept multipart/form-data
// @Produce json
// @Param fullName formData string true "Full name"
// @Param idDocument formData file false "Identity document (png/jpg/jpeg/gif/pdf)"
// @Param birthCertificate formData file false "Birth certificate (png/jpg/jpeg/gif/pdf)"
// @Success 201 {object} dto.ApplicantResponse "Applicant created"
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /apply [post]
func (c *ApplicantController) Apply(ctx *gin.Context) {
	var req dto.ApplicantRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid applicant submission payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	// Absent files are not an error; disallowed ones are skipped downstream
	idDocument, _ := ctx.FormFile("idDocument")
	birthCertificate, _ := ctx.FormFile("birthCertificate")

	applicant, err := c.applicantService.Submit(ctx.Request.Context(), &req, idDocument, birthCertificate)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to create applicant")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewApplicantResponse(applicant))
}

// List returns all applicant records
// @Summary List applicants
// @Tags applicants
// @Produce json
// @Success 200 {array} dto.ApplicantResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applicants [get]
func (c *ApplicantController) List(ctx *gin.Context) {
	applicants, err := c.applicantService.GetAll(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list applicants")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewApplicantListResponse(applicants))
}

// Get returns a single applicant record
// @Summary Get applicant by ID
// @Tags applicants
// @Produce json
// @Param id path int true "Applicant ID"
// @Success 200 {object} dto.ApplicantResponse
// @Failure 404 {object} dto.ErrorResponse "Applicant not found"
// @Router /applicants/{id} [get]
func (c *ApplicantController) Get(ctx *gin.Context) {
	id, ok := parseApplicantID(ctx)
	if !ok {
		return
	}

	applicant, err := c.applicantService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewApplicantResponse(applicant))
}

// UpdateStatus performs a partial status update and attempts a notification
// @Summary Update applicant status
// @Tags applicants
// @Accept json
// @Produce json
// @Param id path int true "Applicant ID"
// @Param request body dto.UpdateApplicantStatusRequest true "New status"
// @Success 200 {object} dto.ApplicantResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Applicant not found"
// @Router /applicants/{id} [put]
func (c *ApplicantController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseApplicantID(ctx)
	if !ok {
		return
	}

	// Status is optional; an empty body keeps the current value
	var req dto.UpdateApplicantStatusRequest
	_ = ctx.ShouldBindJSON(&req)

	applicant, err := c.applicantService.UpdateStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		c.logger.Warn().Err(err).Int64("applicantID", id).Msg("Failed to update applicant status")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewApplicantResponse(applicant))
}

// Update replaces all applicant fields with optional document re-upload
// @Summary Update applicant record
// @Tags applicants
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Applicant ID"
// @Success 200 {object} dto.ApplicantResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 404 {object} dto.ErrorResponse "Applicant not found"
// @Router /applicants/{id}/update [put]
func (c *ApplicantController) Update(ctx *gin.Context) {
	id, ok := parseApplicantID(ctx)
	if !ok {
		return
	}

	var req dto.ApplicantRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid applicant update payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	idDocument, _ := ctx.FormFile("idDocument")
	birthCertificate, _ := ctx.FormFile("birthCertificate")

	applicant, err := c.applicantService.UpdateFull(ctx.Request.Context(), id, &req, idDocument, birthCertificate)
	if err != nil {
		c.logger.Error().Err(err).Int64("applicantID", id).Msg("Failed to update applicant")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewApplicantResponse(applicant))
}

// Delete removes an applicant record
// @Summary Delete applicant
// @Tags applicants
// @Produce json
// @Param id path int true "Applicant ID"
// @Success 200 {object} dto.SuccessResponse "Applicant deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Applicant not found"
// @Router /applicants/{id} [delete]
func (c *ApplicantController) Delete(ctx *gin.Context) {
	id, ok := parseApplicantID(ctx)
	if !ok {
		return
	}

	if err := c.applicantService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: "Applicant deleted successfully",
	})
}
